package prompt

import (
	"strings"

	"github.com/cardgen-ai/cardgen/model"
)

// GetProductPrompt asks for an SEO title and a selling description for one product
func GetProductPrompt(input model.ProductInput) string {
	var sb strings.Builder
	sb.WriteString("Ты - эксперт по созданию продающих карточек товаров для маркетплейсов (Wildberries, Ozon, Яндекс.Маркет).\n\n")
	sb.WriteString("Товар: " + strings.TrimSpace(input.Name) + "\n")
	sb.WriteString("Категория: " + strings.TrimSpace(input.Category) + "\n")
	if features := strings.TrimSpace(input.Features); features != "" {
		sb.WriteString("Особенности: " + features + "\n")
	}
	sb.WriteString(`
Создай:
1. SEO-оптимизированный заголовок (до 200 символов) - включи название, категорию, ключевые преимущества
2. Продающее описание (500-800 символов):
   - Начни с яркого представления товара
   - Перечисли 4-5 ключевых преимуществ с эмодзи
   - Добавь призыв к действию
   - Создай ощущение срочности

Пиши на русском языке, используй эмодзи для визуальной привлекательности.`)
	return sb.String()
}
