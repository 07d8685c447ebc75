package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/state"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// SummaryRenderer genera el PDF de resumen del tablero.
type SummaryRenderer interface {
	RenderDashboard(ctx context.Context, d *dto.DashboardDTO, generatedAt time.Time) ([]byte, error)
}

// PDFInspector valida un PDF y devuelve su cantidad de páginas.
type PDFInspector interface {
	PageCount(pdf []byte) (int, error)
}

// DraftStore borradores abiertos del asistente de creación.
type DraftStore interface {
	Put(id string, d *Draft)
	Get(id string) (*Draft, bool)
	Delete(id string)
}

// ReportStore reportes generados pendientes de envío.
type ReportStore interface {
	Put(id string, r *entity.Report)
	Get(id string) (*entity.Report, bool)
}

// AvailabilityRefresher contenedor de disponibilidad que se refresca tras
// reconfigurar el horario.
type AvailabilityRefresher interface {
	Refresh(ctx context.Context) error
	Snapshot() state.AvailabilityState
}
