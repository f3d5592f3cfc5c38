package caption

import (
	"html"
	"strings"

	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips subtitle markup such as <i> or <font color=...> from
// caption text. A nil *Sanitizer leaves text unchanged.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a sanitizer that removes every tag.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean returns content without markup. Entities are decoded back so that
// "Tom & Jerry" survives unchanged.
func (s *Sanitizer) Clean(content string) string {
	if s == nil || content == "" {
		return content
	}
	cleaned := html.UnescapeString(s.policy.Sanitize(content))
	return strings.TrimSpace(cleaned)
}

// External converts c with ToExternal and cleans its content.
func (s *Sanitizer) External(c domain.Caption, src Source) domain.ExternalCaption {
	ec := ToExternal(c, src)
	ec.Content = s.Clean(ec.Content)
	return ec
}

// CleanExternal cleans the content of an already portable caption.
func (s *Sanitizer) CleanExternal(c domain.ExternalCaption) domain.ExternalCaption {
	c.Content = s.Clean(c.Content)
	return c
}
