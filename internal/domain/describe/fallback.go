package describe

import (
	"fmt"

	"visionvoice-server-go/internal/domain/vision"
)

// DefaultDescription is emitted when nothing at all was detected and when
// the model returns an empty completion.
const DefaultDescription = "A imagem mostra uma cena."

// fallbackRule pairs a predicate with the sentence it produces. The rules
// are evaluated in order; the first match wins.
type fallbackRule struct {
	applies func(a *vision.Analysis) bool
	render  func(a *vision.Analysis) string
}

var fallbackRules = []fallbackRule{
	{
		applies: func(a *vision.Analysis) bool { return a.FaceCount() > 0 },
		render: func(a *vision.Analysis) string {
			return fmt.Sprintf("A imagem mostra %d pessoa(s).", a.FaceCount())
		},
	},
	{
		applies: func(a *vision.Analysis) bool { return a.LabelCount() > 0 },
		render: func(a *vision.Analysis) string {
			return "A imagem mostra uma cena com objetos diversos."
		},
	},
	{
		applies: func(a *vision.Analysis) bool { return true },
		render:  func(a *vision.Analysis) string { return DefaultDescription },
	},
}

// FallbackDescription renders the deterministic description used when
// generation is unavailable. It never returns an empty string.
func FallbackDescription(a *vision.Analysis) string {
	for _, rule := range fallbackRules {
		if rule.applies(a) {
			return rule.render(a)
		}
	}
	return DefaultDescription
}
