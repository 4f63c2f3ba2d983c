package formatter

import (
	"fmt"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
)

const baseTitle = "PharmAssistAI Study Sheet"

type Formatter interface {
	Format(sheet *entity.StudySheet) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
