package ask

import (
	"strings"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
)

// joinPassages concatenates passage contents with single-space separators to
// form the prompt context.
func joinPassages(passages []entity.Passage) string {
	contents := make([]string, 0, len(passages))
	for _, passage := range passages {
		contents = append(contents, passage.Content)
	}
	return strings.Join(contents, " ")
}

// numberSources presents retrieved passages as user-facing sources numbered
// from 1 in similarity order.
func numberSources(passages []entity.Passage) []entity.Source {
	sources := make([]entity.Source, 0, len(passages))
	for i, passage := range passages {
		sources = append(sources, entity.Source{
			Number:   i + 1,
			Content:  passage.Content,
			Metadata: passage.Metadata,
		})
	}
	return sources
}
