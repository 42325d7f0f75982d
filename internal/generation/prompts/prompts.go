// Package prompts builds the provider-facing prompt for each studio
// operation. Keeping the templates in one place makes the wording reviewable
// without digging through service logic; the structured-output operations all
// demand "ONLY valid JSON" so the extractor has something to work with.
package prompts

import (
	"fmt"
	"strings"

	"github.com/brandforge/brandforge-api/internal/domain"
)

// System instructions for the JSON-producing operations.
const (
	BrandSystem           = "You are a creative brand naming expert. You always respond with ONLY valid JSON."
	TaglineSystem         = "You are a creative marketing copywriter. You always respond with ONLY valid JSON."
	ProductSystem         = "You are an expert e-commerce copywriter. You always respond with ONLY valid JSON."
	SentimentSystem       = "You are an expert brand analyst. You always respond with ONLY valid JSON."
	TaglineAnalysisSystem = "You are a world-class brand strategist. You always respond with ONLY valid JSON."
)

// Brand builds the brand-name generation prompt.
func Brand(req domain.BrandRequest) string {
	keywords := strings.Join(req.Keywords, ", ")
	return fmt.Sprintf(`Generate 5 unique, memorable brand names for a business described as: '%s'.
Keywords: %s

Requirements:
- Creative and memorable
- Easy to pronounce
- Modern and professional

Return ONLY a valid JSON array of strings (e.g. ["Name1", "Name2"]). No other text.`, req.Description, keywords)
}

// Tagline builds the tagline generation prompt.
func Tagline(req domain.TaglineRequest) string {
	return fmt.Sprintf(`Generate 5 catchy and impactful taglines for the brand '%s', which is described as: '%s'.
Tone: %s

Provide the output in valid JSON format as a list of objects, where each object has:
- "tagline": The tagline text
- "logic": A brief explanation of why this tagline works (marketing perspective)

Return ONLY valid JSON. No other text.`, req.BrandName, req.Description, req.Tone)
}

// Content builds the free-form copywriting prompt.
func Content(req domain.ContentRequest) string {
	return fmt.Sprintf("Write a %s about '%s' in a %s tone. Keep it engaging and concise.",
		req.ContentType, req.Topic, req.Tone)
}

// ProductDescription builds the e-commerce copy prompt.
func ProductDescription(req domain.ProductDescriptionRequest) string {
	return fmt.Sprintf(`Create compelling product descriptions for '%s'.
Features: %s
Target Audience: %s
Tone: %s

Provide the output in valid JSON format with the following keys:
- "short_description": A 1-2 sentence summary suitable for a catalog card.
- "long_description": A detailed paragraph (3-4 sentences) describing the product benefits.
- "marketing_blurb": A catchy phrase or short paragraph for social media/ads.
- "bullets": A list of 5 customer-focused bullet points highlighting benefits.

Return ONLY valid JSON. No other text.`, req.ProductName, req.Features, req.TargetAudience, req.Tone)
}

// Sentiment builds the feedback-analysis prompt. The brand context clause is
// only added when the caller named a brand.
func Sentiment(req domain.SentimentRequest) string {
	brandContext := ""
	if req.BrandName != "" {
		brandContext = fmt.Sprintf(" for the brand '%s'", req.BrandName)
	}
	return fmt.Sprintf(`Analyze the following customer comments/reviews%s:

"%s"

Provide a detailed analysis in valid JSON format with the following keys:
- "sentiment": "Positive", "Neutral", or "Negative"
- "score": A score from 0 to 100 (where 100 is perfect)
- "summary": A brief summary of the feedback (max 2 sentences)
- "key_issues": A list of specific problems or complaints mentioned
- "suggestions": A list of actionable recommendations for the brand to improve

Return ONLY valid JSON. Do not include markdown formatting or explanations.`, brandContext, req.Text)
}

// TaglineAnalysis builds the tagline-assessment prompt.
func TaglineAnalysis(req domain.TaglineAnalysisRequest) string {
	descContext := ""
	if req.BrandDescription != "" {
		descContext = fmt.Sprintf(" described as '%s'", req.BrandDescription)
	}
	return fmt.Sprintf(`Analyze this tagline for the brand '%s'%s:
Tagline: "%s"

Provide a detailed marketing assessment in valid JSON format with the following keys:
- "sentiment": "Positive", "Bold", "Playful", "Neutral", etc.
- "impact_score": A score from 0 to 100 for memorability and effectiveness.
- "reach_potential": "High", "Medium", or "Low" (likelihood to be shared or remembered).
- "analysis": A 2-3 sentence explanation of why the tagline works or doesn't work.
- "suggestions": A list of 3 concrete ways to improve it for better reach and impact.
- "better_alternatives": A list of 3 improved versions of the tagline.

Return ONLY valid JSON. No other text.`, req.BrandName, descContext, req.Tagline)
}

// Colors builds the palette prompt. The reply is parsed as a comma list, not
// JSON, so the instruction asks for bare hex codes.
func Colors(req domain.ColorsRequest) string {
	return fmt.Sprintf("Suggest a color palette (5 colors) for a brand described as: '%s'. Return ONLY the hex codes in a comma-separated list. do not include any other text.", req.Description)
}

// LogoConcept builds the prompt that asks the text chain for a diffusion
// prompt fragment. The fragment is keywords only; the final image prompt is
// assembled by the logo service.
func LogoConcept(req domain.LogoRequest) string {
	return fmt.Sprintf(`Generate a concise stable diffusion prompt for a logo for: '%s'.
Style: %s.
Requirements:
- Focus on the main subject/icon
- Use comma-separated keywords
- No clear text/letters
- Visual elements only

Example output: minimalist coffee cup, steam, brown and white, vector art, flat design, centered`, req.Description, req.Style)
}
