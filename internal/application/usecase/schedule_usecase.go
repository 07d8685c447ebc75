package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/state"
	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

// ScheduleUseCase configuración del horario de atención.
type ScheduleUseCase struct {
	repo         repository.ScheduleRepository
	availability AvailabilityRefresher
	log          zerolog.Logger
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(repo repository.ScheduleRepository, availability AvailabilityRefresher, log zerolog.Logger) *ScheduleUseCase {
	return &ScheduleUseCase{
		repo:         repo,
		availability: availability,
		log:          log.With().Str("component", "schedule").Logger(),
	}
}

// Availability ventana vigente según la última consulta.
func (uc *ScheduleUseCase) Availability() dto.AvailabilityResponse {
	return ToAvailabilityResponse(uc.availability.Snapshot())
}

// Configure guarda la nueva ventana, regenera el resumen del día y vuelve a
// consultar la disponibilidad.
//
// Si la relectura falla el horario ya quedó guardado: se registra el error y se
// devuelve la última ventana conocida.
func (uc *ScheduleUseCase) Configure(ctx context.Context, in dto.ScheduleRequest) (dto.AvailabilityResponse, error) {
	if in.HoraInicio < 0 || in.HoraInicio > 23 {
		return dto.AvailabilityResponse{}, fmt.Errorf("hora_inicio %d fuera de 0-23: %w", in.HoraInicio, domain.ErrInvalidInput)
	}
	if in.DuracionHoras < 1 || in.DuracionHoras > 24 {
		return dto.AvailabilityResponse{}, fmt.Errorf("duracion_horas %d fuera de 1-24: %w", in.DuracionHoras, domain.ErrInvalidInput)
	}

	cfg := entity.ScheduleConfig{HoraInicio: in.HoraInicio, DuracionHoras: in.DuracionHoras}
	if err := uc.repo.Configure(ctx, cfg); err != nil {
		return dto.AvailabilityResponse{}, err
	}
	uc.log.Info().Int("hora_inicio", cfg.HoraInicio).Int("duracion_horas", cfg.DuracionHoras).Msg("horario configurado")

	if err := uc.repo.GenerateSummary(ctx); err != nil {
		return dto.AvailabilityResponse{}, err
	}

	if err := uc.availability.Refresh(ctx); err != nil && !errors.Is(err, domain.ErrSuperseded) {
		uc.log.Warn().Err(err).Msg("horario guardado pero no se pudo releer la disponibilidad")
	}
	return uc.Availability(), nil
}

// ToAvailabilityResponse foto de disponibilidad para la API.
func ToAvailabilityResponse(s state.AvailabilityState) dto.AvailabilityResponse {
	return dto.AvailabilityResponse{
		Disponible: s.Known && s.Window.Disponible,
		Inicio:     s.Window.Inicio,
		Fin:        s.Window.Fin,
		Conocida:   s.Known,
		Cargando:   s.Loading,
	}
}
