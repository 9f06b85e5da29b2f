package compare

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Indent string // Per-level indentation; empty gives compact output
}

// Format encodes the comparison set. HTML characters are left unescaped so
// recommendation text stays readable.
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if jf.Indent != "" {
		enc.SetIndent("", jf.Indent)
	}
	if err := enc.Encode(compSet); err != nil {
		return "", fmt.Errorf("failed to encode comparison: %w", err)
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}
