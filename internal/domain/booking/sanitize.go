package booking

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var commentPolicy = bluemonday.StrictPolicy()

// SanitizeComments neutralizes markup in free-form customer comments before
// they reach the row store.
func SanitizeComments(raw string) string {
	return strings.TrimSpace(commentPolicy.Sanitize(raw))
}
