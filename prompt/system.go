package prompt

import (
	"fmt"

	"github.com/cardgen-ai/cardgen/common"
)

// GetSystemPrompt returns the copywriter persona, adjusted by the tone and language settings
func GetSystemPrompt(settings common.Settings) string {
	tone := "Ты эксперт по созданию продающих описаний товаров для маркетплейсов."
	if settings.Tone != "" {
		tone += "\n" + settings.Tone
	}
	if settings.Language != "" && settings.Language != common.LanguageRussian {
		tone += fmt.Sprintf("\nWrite the title and the description in %s.", settings.Language)
	}
	return tone
}
