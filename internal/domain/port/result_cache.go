package port

import (
	"context"
	"time"

	"ui-locator/internal/domain/entity"
)

// ResultCache кэш результатов детекции по хэшу изображения
type ResultCache interface {
	// Get возвращает результат; ok=false если записи нет или она устарела
	Get(ctx context.Context, key string) (annotation *entity.Annotation, ok bool, err error)

	// Set сохраняет разметку на время ttl
	Set(ctx context.Context, key string, annotation *entity.Annotation, ttl time.Duration) error
}
