package telegram

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ui-locator/internal/domain/entity"
	"ui-locator/internal/infrastructure/vision"
)

func TestFormatResult(t *testing.T) {
	res, err := vision.NewStubDetector("").Detect(context.Background(), entity.NewFrame(200, 100))
	require.NoError(t, err)

	text := formatResult(res)
	require.True(t, strings.HasPrefix(text, "🎯 Найдено элементов: 3"))
	require.Contains(t, text, "1. Кнопка — (100, 30) px, 50.0% × 30.0%, уверенность 0.95")
	require.Contains(t, text, "рамка (90, 25)–(110, 35)")
	require.Contains(t, text, "3. Кнопка отправки — (100, 70) px")
}

func TestFormatResult_Empty(t *testing.T) {
	require.Equal(t, msgNothingFound, formatResult(&entity.DetectionResult{}))
	require.Equal(t, msgNothingFound, formatResult(nil))
}

func TestIsImageDocument(t *testing.T) {
	require.True(t, isImageMime("image/png"))
	require.True(t, isImageMime("image/jpeg"))
	require.False(t, isImageMime("application/pdf"))
	require.False(t, isImageMime(""))
}
