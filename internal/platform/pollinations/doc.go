// Package pollinations implements generation.ImageBackend against the keyless
// pollinations.ai image endpoint. It is the last resort of the logo cascade:
// no credential, a single GET, and the rendered image in the response body.
package pollinations
