package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Caso 1: rango "min-max" → predicado BETWEEN inclusivo.
func TestParsePurityFilter_Rango(t *testing.T) {
	f := ParsePurityFilter("95-100")
	require.NotNil(t, f)
	assert.Equal(t, PurityBetween, f.Op)
	assert.Equal(t, 95.0, f.Min)
	assert.Equal(t, 100.0, f.Max)

	assert.True(t, f.Matches("95"), "límite inferior incluido")
	assert.True(t, f.Matches("99.5"), "decimales dentro del rango")
	assert.True(t, f.Matches("100"), "límite superior incluido")
	assert.False(t, f.Matches("94"))
	assert.False(t, f.Matches("100.1"))
}

// Caso 1b: rango invertido se pasa literal, sin normalizar → no matchea nada.
func TestParsePurityFilter_RangoInvertidoSinNormalizar(t *testing.T) {
	f := ParsePurityFilter("100-95")
	require.NotNil(t, f)
	assert.Equal(t, 100.0, f.Min)
	assert.Equal(t, 95.0, f.Max)
	assert.False(t, f.Matches("97"), "rango invertido no debe matchear")
}

// Caso 2: operadores de prefijo, ">=" se prueba antes que ">".
func TestParsePurityFilter_Operadores(t *testing.T) {
	gte := ParsePurityFilter(">=95")
	require.NotNil(t, gte)
	assert.Equal(t, PurityGTE, gte.Op)
	assert.True(t, gte.Matches("95"))
	assert.True(t, gte.Matches("96"))
	assert.False(t, gte.Matches("94.9"))

	gt := ParsePurityFilter(">95")
	require.NotNil(t, gt)
	assert.Equal(t, PurityGT, gt.Op)
	assert.False(t, gt.Matches("95"))
	assert.True(t, gt.Matches("95.1"))

	lte := ParsePurityFilter("<=90")
	require.NotNil(t, lte)
	assert.Equal(t, PurityLTE, lte.Op)
	assert.True(t, lte.Matches("90"))

	lt := ParsePurityFilter("<90")
	require.NotNil(t, lt)
	assert.Equal(t, PurityLT, lt.Op)
	assert.True(t, lt.Matches("89.9"))
	assert.False(t, lt.Matches("90"))
}

// Caso 3: sin operador ni rango → igualdad exacta.
func TestParsePurityFilter_ValorExacto(t *testing.T) {
	f := ParsePurityFilter("97")
	require.NotNil(t, f)
	assert.Equal(t, PurityEq, f.Op)
	assert.True(t, f.Matches("97"))
	assert.False(t, f.Matches("96"))
}

// Caso 4: el "%" final se ignora en cualquier operando.
func TestParsePurityFilter_IgnoraPorcentaje(t *testing.T) {
	f := ParsePurityFilter(">=95%")
	require.NotNil(t, f)
	assert.Equal(t, 95.0, f.Value)

	r := ParsePurityFilter("95%-100%")
	require.NotNil(t, r)
	assert.Equal(t, 95.0, r.Min)
	assert.Equal(t, 100.0, r.Max)
}

// Caso 5: coerción laxa — basura no numérica vale 0 (comportamiento documentado
// del sistema anterior; no se responde 400).
func TestParsePurityFilter_BasuraValeCero(t *testing.T) {
	f := ParsePurityFilter(">=abc")
	require.NotNil(t, f)
	assert.Equal(t, 0.0, f.Value)
	assert.True(t, f.Matches("1"), "todo >= 0 matchea")

	pre := ParsePurityFilter("95abc")
	require.NotNil(t, pre)
	assert.Equal(t, 95.0, pre.Value, "prefijo numérico sí se toma")
}

// Caso 6: filtro vacío → nil, no se agrega predicado.
func TestParsePurityFilter_VacioEsNil(t *testing.T) {
	assert.Nil(t, ParsePurityFilter(""))
	assert.Nil(t, ParsePurityFilter("   "))

	var f *PurityFilter
	assert.True(t, f.Matches("50"), "predicado nil matchea todo")
}
