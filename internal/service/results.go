package service

// Result shapes returned by the studio operations. These are the stable JSON
// contracts of the API; provider output is coerced into them, with extraction
// failures masked by per-operation defaults rather than surfaced as errors.

// BrandResult holds generated brand name suggestions.
type BrandResult struct {
	BrandNames []string `json:"brand_names"`
}

// TaglineSuggestion is one tagline with its marketing rationale.
type TaglineSuggestion struct {
	Tagline string `json:"tagline"`
	Logic   string `json:"logic"`
}

// TaglineResult holds generated tagline suggestions.
type TaglineResult struct {
	Taglines []TaglineSuggestion `json:"taglines"`
}

// ContentResult holds a piece of free-form marketing copy.
type ContentResult struct {
	Content string `json:"content"`
}

// ProductDescriptionResult holds the layered product copy.
type ProductDescriptionResult struct {
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description"`
	MarketingBlurb   string   `json:"marketing_blurb"`
	Bullets          []string `json:"bullets"`
}

// SentimentResult holds the feedback analysis. Score is a float because
// providers occasionally return fractional scores.
type SentimentResult struct {
	Sentiment   string   `json:"sentiment"`
	Score       float64  `json:"score"`
	Summary     string   `json:"summary"`
	KeyIssues   []string `json:"key_issues"`
	Suggestions []string `json:"suggestions"`
}

// TaglineAnalysisResult holds the marketing assessment of a tagline.
type TaglineAnalysisResult struct {
	Sentiment          string   `json:"sentiment"`
	ImpactScore        float64  `json:"impact_score"`
	ReachPotential     string   `json:"reach_potential"`
	Analysis           string   `json:"analysis"`
	Suggestions        []string `json:"suggestions"`
	BetterAlternatives []string `json:"better_alternatives"`
}

// ColorsResult holds a hex color palette.
type ColorsResult struct {
	Colors []string `json:"colors"`
}

// ChatResult holds the assistant's next reply.
type ChatResult struct {
	Reply string `json:"reply"`
}

// LogoResult holds a generated logo. Image is an inline data URI whose bytes
// match the file served at FileURL exactly.
type LogoResult struct {
	Prompt  string `json:"prompt"`
	Image   string `json:"image"`
	FileURL string `json:"file_url"`
}

// TranscriptionResult holds a voice transcript.
type TranscriptionResult struct {
	Transcription string `json:"transcription"`
}
