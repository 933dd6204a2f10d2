package storefront

// MediaResolver resuelve una ruta de archivo almacenada a URL absoluta.
// Devuelve nil para ruta vacía; una URL ya absoluta se devuelve tal cual.
type MediaResolver interface {
	URL(path string) *string
}
