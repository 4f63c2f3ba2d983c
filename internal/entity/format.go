package entity

import "fmt"

// ResultFormat identifies a study-sheet export format.
type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatPDF      ResultFormat = "pdf"
)

// ParseResultFormat validates a user-supplied format string. An empty string
// defaults to markdown.
func ParseResultFormat(s string) (ResultFormat, error) {
	switch s {
	case "", "md", string(FormatMarkdown):
		return FormatMarkdown, nil
	case string(FormatPDF):
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: format %q", ErrInvalidParameter, s)
	}
}
