package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF de los elementos seleccionados en
// monitoreo y lo envía por correo a los destinatarios.
type ReportUseCase struct {
	reports   repository.ReportRepository
	inspector PDFInspector
	store     ReportStore
	log       zerolog.Logger
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports repository.ReportRepository, inspector PDFInspector, store ReportStore, log zerolog.Logger) *ReportUseCase {
	return &ReportUseCase{
		reports:   reports,
		inspector: inspector,
		store:     store,
		log:       log.With().Str("component", "reports").Logger(),
	}
}

// Generate pide el PDF al backend y lo deja listo para enviar. Los ids
// seleccionados se envían sin repetir y ordenados.
func (uc *ReportUseCase) Generate(ctx context.Context, user *entity.User, in dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	titulo := strings.TrimSpace(in.Titulo)
	destino := entity.NewSelection(in.Destino...).IDs()
	if titulo == "" || len(destino) == 0 {
		return nil, fmt.Errorf("reporte: título y al menos un destinatario requeridos: %w", domain.ErrInvalidInput)
	}

	req := entity.ReportRequest{
		Titulo:  titulo,
		Motivo:  strings.TrimSpace(in.Motivo),
		Usuario: user.ID,
		Notas:   strings.TrimSpace(in.Notas),
		Destino: destino,
		Informacion: entity.ReportInfo{
			ProcesosEjecutados: entity.NewSelection(in.ProcesosEjecutados...).IDs(),
			Registros:          entity.NewSelection(in.Registros...).IDs(),
		},
	}
	pdf, err := uc.reports.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	pages, err := uc.inspector.PageCount(pdf)
	if err != nil {
		uc.log.Error().Err(err).Int("bytes", len(pdf)).Msg("el backend devolvió un PDF inválido")
		return nil, fmt.Errorf("reporte: %v: %w", err, domain.ErrBackend)
	}

	rep := &entity.Report{ID: uuid.NewString(), Destino: destino, PDF: pdf, Paginas: pages}
	uc.store.Put(reportKey(user.Email, rep.ID), rep)
	uc.log.Info().Str("reporte", rep.ID).Str("usuario", user.Email).Int("paginas", pages).Msg("reporte generado")

	return &dto.ReportResponse{ID: rep.ID, Paginas: pages, Bytes: len(pdf), Destino: destino}, nil
}

// PDF bytes del reporte generado por owner.
func (uc *ReportUseCase) PDF(owner, id string) (*entity.Report, error) {
	rep, ok := uc.store.Get(reportKey(owner, id))
	if !ok {
		return nil, fmt.Errorf("reporte %s: %w", id, domain.ErrNoReport)
	}
	return rep, nil
}

// Send envía el reporte a sus destinatarios.
func (uc *ReportUseCase) Send(ctx context.Context, owner, id string) error {
	rep, err := uc.PDF(owner, id)
	if err != nil {
		return err
	}
	if err := uc.reports.Send(ctx, rep.Destino, rep.PDF); err != nil {
		uc.log.Error().Err(err).Str("reporte", id).Msg("no se pudo enviar el reporte")
		return err
	}
	uc.log.Info().Str("reporte", id).Ints("destino", rep.Destino).Msg("reporte enviado")
	return nil
}

func reportKey(owner, id string) string { return owner + "/" + id }
