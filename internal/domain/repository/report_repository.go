package repository

import (
	"context"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// ReportRepository generación y envío de reportes PDF.
type ReportRepository interface {
	// Generate devuelve los bytes del PDF generado por el backend.
	Generate(ctx context.Context, req entity.ReportRequest) ([]byte, error)
	Send(ctx context.Context, destino []int, pdf []byte) error
}
