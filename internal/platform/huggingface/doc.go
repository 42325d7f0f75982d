// Package huggingface implements generation.ImageBackend against the Hugging
// Face serverless inference API. Each backend wraps one hosted text-to-image
// model; the logo cascade walks them in order until one renders.
package huggingface
