package domain

// The request records below describe one creative brief each. They are
// immutable for the lifetime of a request; ApplyDefaults fills the optional
// fields the client left empty. Validation tags are enforced at the API
// boundary before a record reaches a service.

// BrandRequest asks for brand-name suggestions.
type BrandRequest struct {
	Description string   `json:"description" validate:"required,min=1"`
	Keywords    []string `json:"keywords"`
}

// TaglineRequest asks for tagline suggestions for an existing brand.
type TaglineRequest struct {
	BrandName   string `json:"brand_name"  validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	Tone        string `json:"tone"`
}

// ApplyDefaults fills optional fields with their documented defaults.
func (r *TaglineRequest) ApplyDefaults() {
	if r.Tone == "" {
		r.Tone = "catchy"
	}
}

// ContentRequest asks for a piece of marketing copy.
type ContentRequest struct {
	Topic       string `json:"topic" validate:"required,min=1"`
	Tone        string `json:"tone"`
	ContentType string `json:"content_type"`
}

// ApplyDefaults fills optional fields with their documented defaults.
func (r *ContentRequest) ApplyDefaults() {
	if r.Tone == "" {
		r.Tone = "professional"
	}
	if r.ContentType == "" {
		r.ContentType = "blog post"
	}
}

// ProductDescriptionRequest asks for e-commerce product copy.
type ProductDescriptionRequest struct {
	ProductName    string `json:"product_name" validate:"required,min=1"`
	Features       string `json:"features"     validate:"required,min=1"`
	TargetAudience string `json:"target_audience"`
	Tone           string `json:"tone"`
}

// ApplyDefaults fills optional fields with their documented defaults.
func (r *ProductDescriptionRequest) ApplyDefaults() {
	if r.TargetAudience == "" {
		r.TargetAudience = "general"
	}
	if r.Tone == "" {
		r.Tone = "persuasive"
	}
}

// SentimentRequest asks for sentiment analysis of customer feedback.
type SentimentRequest struct {
	Text      string `json:"text" validate:"required,min=1"`
	BrandName string `json:"brand_name"`
}

// TaglineAnalysisRequest asks for a marketing assessment of a tagline.
type TaglineAnalysisRequest struct {
	Tagline          string `json:"tagline"    validate:"required,min=1"`
	BrandName        string `json:"brand_name" validate:"required,min=1"`
	BrandDescription string `json:"brand_description"`
}

// ColorsRequest asks for a brand color palette.
type ColorsRequest struct {
	Description string `json:"description" validate:"required,min=1"`
}

// ChatMessage is one prior turn of a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest asks for the next assistant reply in a conversation.
type ChatRequest struct {
	Message string        `json:"message" validate:"required,min=1"`
	History []ChatMessage `json:"history"`
}

// LogoRequest asks for a generated logo image.
type LogoRequest struct {
	Description string `json:"description" validate:"required,min=1"`
	Style       string `json:"style"`
}

// ApplyDefaults fills optional fields with their documented defaults.
func (r *LogoRequest) ApplyDefaults() {
	if r.Style == "" {
		r.Style = "modern, minimalist"
	}
}
