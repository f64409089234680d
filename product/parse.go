package product

import (
	"fmt"
	"strings"

	"github.com/cardgen-ai/cardgen/common"
	"github.com/cardgen-ai/cardgen/model"
)

// ParseCard splits a completion into a title and a description.
// The first line is treated as a heading and skipped, as are the numbered
// "1." / "2." section labels. Missing parts fall back to a template title
// and the raw completion.
func ParseCard(text string, input model.ProductInput) model.GenerationResult {
	text = strings.TrimSpace(text)

	var title string
	var description []string
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		switch {
		case i == 0:
			continue
		case title == "" && (strings.Contains(lower, "заголовок") || strings.HasPrefix(line, "1.")):
			continue
		case title == "":
			title = common.StripEmphasis(line)
		case strings.Contains(lower, "описание") || strings.HasPrefix(line, "2."):
			continue
		default:
			description = append(description, common.StripEmphasis(line))
		}
	}

	if title == "" {
		title = fmt.Sprintf("%s - %s премиум качества | Быстрая доставка",
			strings.TrimSpace(input.Name), strings.TrimSpace(input.Category))
	}

	desc := strings.Join(description, "\n")
	if desc == "" {
		desc = text
	}

	return model.GenerationResult{
		Title:       title,
		Description: desc,
	}
}
