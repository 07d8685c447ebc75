// Package web contiene las plantillas HTML y los archivos estáticos del panel
// embebidos en el binario.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

// Templates sistema de archivos con raíz en templates/.
func Templates() fs.FS {
	return sub(templates, "templates")
}

// Static scripts de las vistas, servidos bajo /static.
func Static() fs.FS {
	return sub(static, "static")
}

func sub(fsys embed.FS, dir string) fs.FS {
	out, err := fs.Sub(fsys, dir)
	if err != nil {
		// el directorio está embebido; solo falla si cambia el nombre
		panic(err)
	}
	return out
}
