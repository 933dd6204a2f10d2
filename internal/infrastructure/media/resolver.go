// Package media resuelve rutas de archivos guardadas en BD a URLs públicas.
package media

import "strings"

// Resolver convierte rutas relativas de almacenamiento en URLs absolutas
// anteponiendo la base pública. Las rutas que ya son URLs absolutas se
// devuelven sin tocar.
type Resolver struct {
	baseURL string
}

// NewResolver construye el resolver con la URL base del almacenamiento
// público (ej. https://cdn.example.com/storage).
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// URL resuelve path a URL pública. Devuelve nil para rutas vacías.
func (r *Resolver) URL(path string) *string {
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return &path
	}
	resolved := r.baseURL + "/" + strings.TrimLeft(path, "/")
	return &resolved
}
