package entity

import "time"

// Tipos de dueño y colecciones con nombre para adjuntos de media.
// Los nombres de colección replican los del panel admin anterior.
const (
	MediaOwnerProducts   = "products"
	MediaOwnerCategories = "categories"

	MediaCollectionThumbnail  = "thumbnail"
	MediaCollectionImages     = "images"
	MediaCollectionCategories = "categories"
)

// Media adjunto de archivo de una entidad, agrupado por colección con nombre.
// FilePath es relativo al almacenamiento público (o una URL ya absoluta).
type Media struct {
	ID         string
	OwnerType  string
	OwnerID    string
	Collection string
	FilePath   string
	Position   int
	CreatedAt  time.Time
}
