package prompt

import (
	"strings"
	"testing"

	"github.com/cardgen-ai/cardgen/common"
	"github.com/cardgen-ai/cardgen/model"
)

func TestGetProductPrompt(t *testing.T) {
	p := GetProductPrompt(model.ProductInput{Name: "Беспроводные наушники", Category: "Электроника"})

	if !strings.Contains(p, "Товар: Беспроводные наушники") {
		t.Error("Expected product name in prompt")
	}
	if !strings.Contains(p, "Категория: Электроника") {
		t.Error("Expected category in prompt")
	}
	if strings.Contains(p, "Особенности:") {
		t.Error("Expected no features line when features are empty")
	}
}

func TestGetProductPrompt_WithFeatures(t *testing.T) {
	p := GetProductPrompt(model.ProductInput{Name: "Наушники", Category: "Электроника", Features: "ANC, 30 часов"})

	if !strings.Contains(p, "Особенности: ANC, 30 часов") {
		t.Errorf("Expected features line, got:\n%s", p)
	}
}

func TestGetSystemPrompt(t *testing.T) {
	settings := common.WithDefaultSettings()
	if strings.Contains(GetSystemPrompt(settings), "Write the title") {
		t.Error("Expected no language instruction for the default language")
	}

	settings.Language = "en-US"
	settings.Tone = "Пиши с юмором."
	p := GetSystemPrompt(settings)
	if !strings.Contains(p, "en-US") {
		t.Error("Expected language instruction")
	}
	if !strings.Contains(p, "Пиши с юмором.") {
		t.Error("Expected tone instructions")
	}
}
