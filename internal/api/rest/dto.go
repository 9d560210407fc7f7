package rest

import "ui-locator/internal/domain/entity"

// OverlayQuery параметры отрисовки из query-строки
type OverlayQuery struct {
	Radius    int `query:"radius" validate:"gte=1,lte=100"`
	Thickness int `query:"thickness" validate:"gte=1,lte=50"`
}

func defaultOverlayQuery() OverlayQuery {
	return OverlayQuery{Radius: entity.DefaultRadius, Thickness: entity.DefaultThickness}
}

func (q OverlayQuery) options() entity.OverlayOptions {
	return entity.OverlayOptions{Radius: q.Radius, Thickness: q.Thickness}
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Detail  string `json:"detail"`
	TraceID string `json:"trace_id,omitempty"`
}
