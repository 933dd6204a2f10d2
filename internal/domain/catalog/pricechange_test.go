package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Caso 1: subida de 100 a 110 → +10.0%.
func TestPercentChange_Subida(t *testing.T) {
	p := PercentChange(100, 110)
	require.NotNil(t, p)
	assert.Equal(t, 10.0, *p)
}

// Caso 2: old = 0 → nil, sin importar el nuevo precio.
func TestPercentChange_OldCeroEsNil(t *testing.T) {
	assert.Nil(t, PercentChange(0, 110))
	assert.Nil(t, PercentChange(0, 0))
}

// Caso 3: redondeo a 1 decimal.
func TestPercentChange_RedondeaUnDecimal(t *testing.T) {
	// (103-100)/100*100 = 3.0 ; (101-103)/103*100 = -1.9417... → -1.9
	p := PercentChange(103, 101)
	require.NotNil(t, p)
	assert.Equal(t, -1.9, *p)

	q := PercentChange(3, 4) // 33.333... → 33.3
	require.NotNil(t, q)
	assert.Equal(t, 33.3, *q)
}

func TestToFloat_Coercion(t *testing.T) {
	v, ok := ToFloat(1250.5)
	assert.True(t, ok)
	assert.Equal(t, 1250.5, v)

	v, ok = ToFloat("1000.00")
	assert.True(t, ok)
	assert.Equal(t, 1000.0, v)

	// Filas viejas con formato: se limpia todo salvo dígitos, punto y signo.
	v, ok = ToFloat("$1,250.50")
	assert.True(t, ok)
	assert.Equal(t, 1250.50, v)

	_, ok = ToFloat(nil)
	assert.False(t, ok)

	_, ok = ToFloat("sin numeros")
	assert.False(t, ok)
}
