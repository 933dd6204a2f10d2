package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrade_AgregaPorcentaje(t *testing.T) {
	g := Grade("97")
	require.NotNil(t, g)
	assert.Equal(t, "97%", *g)
}

func TestGrade_Idempotente(t *testing.T) {
	g := Grade("97%")
	require.NotNil(t, g)
	assert.Equal(t, "97%", *g, "no debe duplicar el %")
}

func TestGrade_Decimales(t *testing.T) {
	g := Grade("99.5")
	require.NotNil(t, g)
	assert.Equal(t, "99.5%", *g)
}

func TestGrade_VacioEsNil(t *testing.T) {
	assert.Nil(t, Grade(""))
}
