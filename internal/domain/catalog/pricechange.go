package catalog

import (
	"math"
	"strconv"
	"strings"
)

// PercentChange variación porcentual entre dos precios, redondeada a 1 decimal.
// Devuelve nil cuando old es 0 (división indefinida).
func PercentChange(old, new float64) *float64 {
	if old == 0 {
		return nil
	}
	p := math.Round((new-old)/old*100*10) / 10
	return &p
}

// ToFloat coerción laxa de un valor de diff de auditoría (los JSON decodifican
// números como float64, pero filas viejas traen strings con formato). Quita
// todo lo que no sea dígito, punto o signo; si no queda nada devuelve false.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f, true
		}
		var b strings.Builder
		for _, r := range x {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				b.WriteRune(r)
			}
		}
		clean := b.String()
		if clean == "" {
			return 0, false
		}
		return looseFloat(clean), true
	default:
		return 0, false
	}
}
