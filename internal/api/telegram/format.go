package telegram

import (
	"fmt"
	"strings"

	"ui-locator/internal/domain/entity"
)

var elementTitles = map[entity.ElementType]string{
	entity.ElementButton:       "Кнопка",
	entity.ElementTextField:    "Поле ввода",
	entity.ElementSubmitButton: "Кнопка отправки",
}

// formatResult собирает текстовый отчёт по найденным элементам
func formatResult(result *entity.DetectionResult) string {
	if result == nil || len(result.Points) == 0 {
		return msgNothingFound
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎯 Найдено элементов: %d\n", len(result.Points)))
	for i, p := range result.Points {
		title, ok := elementTitles[p.ElementType]
		if !ok {
			title = string(p.ElementType)
		}
		sb.WriteString(fmt.Sprintf("\n%d. %s — (%d, %d) px, %.1f%% × %.1f%%, уверенность %.2f",
			i+1, title, p.X, p.Y, p.NormalizedX, p.NormalizedY, p.Confidence))
		if i < len(result.Boxes) {
			b := result.Boxes[i].Coords
			sb.WriteString(fmt.Sprintf("\n   рамка (%d, %d)–(%d, %d)", b[0], b[1], b[2], b[3]))
		}
	}
	return sb.String()
}
