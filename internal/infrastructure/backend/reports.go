package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportFileName nombre con el que se adjunta el PDF al envío.
const ReportFileName = "reporte.pdf"

// ReportRepo generación (/latex/generate) y envío (/email/report/send) de reportes.
type ReportRepo struct {
	c *Client
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(c *Client) *ReportRepo {
	return &ReportRepo{c: c}
}

// Generate POST /latex/generate; la respuesta es el PDF binario.
func (r *ReportRepo) Generate(ctx context.Context, req entity.ReportRequest) ([]byte, error) {
	raw, err := r.c.doRaw(ctx, request{method: http.MethodPost, path: "/latex/generate", body: req})
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("backend: reporte vacío: %w", domain.ErrBackend)
	}
	return raw, nil
}

// Send POST /email/report/send como multipart: un campo "destino" por
// destinatario y el archivo "pdf".
func (r *ReportRepo) Send(ctx context.Context, destino []int, pdf []byte) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, id := range destino {
		if err := w.WriteField("destino", strconv.Itoa(id)); err != nil {
			return fmt.Errorf("backend: armar multipart: %w", err)
		}
	}
	part, err := w.CreateFormFile("pdf", ReportFileName)
	if err != nil {
		return fmt.Errorf("backend: armar multipart: %w", err)
	}
	if _, err := part.Write(pdf); err != nil {
		return fmt.Errorf("backend: armar multipart: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("backend: armar multipart: %w", err)
	}

	_, err = r.c.doRaw(ctx, request{
		method:      http.MethodPost,
		path:        "/email/report/send",
		raw:         &buf,
		contentType: w.FormDataContentType(),
	})
	return err
}
