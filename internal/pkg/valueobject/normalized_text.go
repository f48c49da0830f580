package valueobject

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/shandysiswandi/goident/internal/pkg/apperror"
	"golang.org/x/text/unicode/norm"
)

// TextRule constrains how a raw string is normalized and validated.
//
// Length bounds count grapheme clusters (user-perceived characters), not
// bytes and not runes. A zero bound means the bound is not enforced.
type TextRule struct {
	// Label names the field in error messages, e.g. "first_name".
	Label string
	// Required rejects input that is empty after normalization and trimming.
	Required bool
	// MinLen is the inclusive lower bound on grapheme clusters.
	MinLen int
	// MaxLen is the inclusive upper bound on grapheme clusters.
	MaxLen int
}

func (r TextRule) label() string {
	if r.Label == "" {
		return "value"
	}

	return r.Label
}

// NormalizedText is a string that survived normalization and validation.
//
// The wrapped value is NFKC-normalized, trimmed, non-empty, and within the
// rule's grapheme bounds. It never changes after construction.
type NormalizedText struct {
	value string
}

// String returns the normalized string.
func (t NormalizedText) String() string {
	return t.value
}

// Normalize converts untrusted input into a NormalizedText.
//
// The input is NFKC-normalized first, so full-width and compatibility
// characters collapse to canonical forms, then trimmed. Trimming must
// happen after normalization because compatibility decompositions can
// surface whitespace at the edges.
//
// A nil result with a nil error means the input was empty and the rule
// allows absence.
func Normalize(input string, rule TextRule) (*NormalizedText, error) {
	value := strings.TrimSpace(norm.NFKC.String(input))

	if value == "" {
		if rule.Required {
			return nil, apperror.Newf(apperror.KindUnprocessableContent, "%s is required", rule.label())
		}

		return nil, nil
	}

	count := uniseg.GraphemeClusterCount(value)

	if rule.MinLen > 0 && count < rule.MinLen {
		return nil, apperror.Newf(apperror.KindUnprocessableContent,
			"%s must be at least %d characters", rule.label(), rule.MinLen)
	}

	if rule.MaxLen > 0 && count > rule.MaxLen {
		return nil, apperror.Newf(apperror.KindUnprocessableContent,
			"%s must be at most %d characters", rule.label(), rule.MaxLen)
	}

	return &NormalizedText{value: value}, nil
}
