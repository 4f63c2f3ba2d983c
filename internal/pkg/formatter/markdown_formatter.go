package formatter

import (
	"bytes"
	"fmt"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(sheet *entity.StudySheet) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", baseTitle)
	fmt.Fprintf(&buf, "## Question\n\n%s\n\n", sheet.Question)
	fmt.Fprintf(&buf, "## Answer\n\n%s\n", sheet.Answer)

	if len(sheet.Flashcards) > 0 {
		fmt.Fprintf(&buf, "\n## Flashcards\n")
		for i, card := range sheet.Flashcards {
			fmt.Fprintf(&buf, "\n%d. **%s**\n\n   %s\n", i+1, card.Question, card.Answer)
		}
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
