package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Inspector valida con pdfcpu los PDF que genera el backend.
type Inspector struct {
	conf *model.Configuration
}

// NewInspector usa validación relajada: los PDF de LaTeX suelen traer
// pequeñas desviaciones del estándar.
func NewInspector() *Inspector {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Inspector{conf: conf}
}

// PageCount devuelve la cantidad de páginas; error si pdf no es un PDF legible.
func (i *Inspector) PageCount(pdf []byte) (int, error) {
	if len(pdf) == 0 {
		return 0, fmt.Errorf("pdf: documento vacío")
	}
	n, err := api.PageCount(bytes.NewReader(pdf), i.conf)
	if err != nil {
		return 0, fmt.Errorf("pdf: leer documento: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("pdf: documento sin páginas")
	}
	return n, nil
}
