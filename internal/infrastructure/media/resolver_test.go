package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_RutaRelativa(t *testing.T) {
	r := NewResolver("https://cdn.example.com/storage")

	got := r.URL("products/oro-24k.jpg")
	require.NotNil(t, got)
	assert.Equal(t, "https://cdn.example.com/storage/products/oro-24k.jpg", *got)
}

func TestResolver_NormalizaBarras(t *testing.T) {
	// Base con barra final y ruta con barra inicial no duplican separador.
	r := NewResolver("https://cdn.example.com/storage/")

	got := r.URL("/products/oro-24k.jpg")
	require.NotNil(t, got)
	assert.Equal(t, "https://cdn.example.com/storage/products/oro-24k.jpg", *got)
}

func TestResolver_URLAbsolutaSinCambios(t *testing.T) {
	r := NewResolver("https://cdn.example.com/storage")

	// Caso 1: http
	got := r.URL("http://otro.example.com/img.png")
	require.NotNil(t, got)
	assert.Equal(t, "http://otro.example.com/img.png", *got)

	// Caso 2: https
	got = r.URL("https://otro.example.com/img.png")
	require.NotNil(t, got)
	assert.Equal(t, "https://otro.example.com/img.png", *got)
}

func TestResolver_RutaVaciaDevuelveNil(t *testing.T) {
	r := NewResolver("https://cdn.example.com/storage")

	assert.Nil(t, r.URL(""))
}
