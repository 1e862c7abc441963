package subject

import "github.com/go-playground/validator/v10"

// DefaultPlaygroundTag is the validation tag used by NewPlayground.
const DefaultPlaygroundTag = "required,url"

// Playground validates URLs with a go-playground/validator tag.
type Playground struct {
	validate *validator.Validate
	tag      string
}

// NewPlayground creates a Playground using tag, or DefaultPlaygroundTag when
// tag is empty.
func NewPlayground(tag string) *Playground {
	if tag == "" {
		tag = DefaultPlaygroundTag
	}
	return &Playground{validate: validator.New(), tag: tag}
}

// Validate returns the validator's error for rawURL, or nil.
func (p *Playground) Validate(rawURL string) error {
	return p.validate.Var(rawURL, p.tag)
}

// IsValid reports whether rawURL passes the tag.
func (p *Playground) IsValid(rawURL string) bool {
	return p.Validate(rawURL) == nil
}
