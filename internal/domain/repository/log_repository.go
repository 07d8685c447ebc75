package repository

import (
	"context"
	"time"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// LogRepository actividad reciente y corrección de fechas.
type LogRepository interface {
	Latest(ctx context.Context, limit int) ([]entity.LogRecord, error)
	LatestExecuted(ctx context.Context, limit int) ([]entity.ExecutedProcess, error)
	SearchExecuted(ctx context.Context, q entity.ExecutedSearch) ([]entity.LogRecord, error)
	UpdateCreationDate(ctx context.Context, recordID int, at time.Time) error
}
