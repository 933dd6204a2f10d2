// Package catalog contiene el núcleo puro del catálogo: parseo del filtro de
// pureza, formato de grado y cálculo de variación de precio. Sin dependencias
// de infraestructura para poder evaluarse en memoria o traducirse a SQL.
package catalog

import (
	"strconv"
	"strings"
)

// PurityOp operador de comparación numérica sobre la pureza almacenada.
type PurityOp int

const (
	PurityBetween PurityOp = iota // rango inclusivo [Min, Max]
	PurityGTE
	PurityGT
	PurityLTE
	PurityLT
	PurityEq
)

// PurityFilter predicado numérico derivado de la expresión libre del usuario.
// Para PurityBetween aplican Min/Max; para el resto, Value.
type PurityFilter struct {
	Op    PurityOp
	Value float64
	Min   float64
	Max   float64
}

// ParsePurityFilter interpreta expresiones como "95-100", ">=95", "<90" o "97",
// con "%" opcional en cada operando. Reglas (en este orden):
//
//  1. Contiene "-": rango inclusivo [min, max]. Los operandos se pasan tal
//     cual, sin normalizar min<=max (un rango invertido no matchea nada).
//  2. Prefijos ">=", ">", "<=", "<": comparación con el resto.
//  3. En otro caso: igualdad exacta.
//
// La coerción numérica es laxa: basura no numérica vale 0 (se mantiene la
// semántica del sistema anterior en vez de responder 400).
// Entrada vacía o solo espacios devuelve nil: sin predicado.
func ParsePurityFilter(raw string) *PurityFilter {
	p := strings.TrimSpace(raw)
	if p == "" {
		return nil
	}

	if strings.Contains(p, "-") {
		parts := strings.SplitN(p, "-", 2)
		return &PurityFilter{
			Op:  PurityBetween,
			Min: looseFloat(parts[0]),
			Max: looseFloat(parts[1]),
		}
	}

	switch {
	case strings.HasPrefix(p, ">="):
		return &PurityFilter{Op: PurityGTE, Value: looseFloat(p[2:])}
	case strings.HasPrefix(p, ">"):
		return &PurityFilter{Op: PurityGT, Value: looseFloat(p[1:])}
	case strings.HasPrefix(p, "<="):
		return &PurityFilter{Op: PurityLTE, Value: looseFloat(p[2:])}
	case strings.HasPrefix(p, "<"):
		return &PurityFilter{Op: PurityLT, Value: looseFloat(p[1:])}
	}
	return &PurityFilter{Op: PurityEq, Value: looseFloat(p)}
}

// Matches evalúa el predicado contra el valor de pureza almacenado (texto),
// casteado a número con la misma coerción laxa. Es el equivalente en memoria
// del CAST(purity AS NUMERIC) que aplica el repositorio en SQL.
func (f *PurityFilter) Matches(stored string) bool {
	if f == nil {
		return true
	}
	v := looseFloat(stored)
	switch f.Op {
	case PurityBetween:
		return v >= f.Min && v <= f.Max
	case PurityGTE:
		return v >= f.Value
	case PurityGT:
		return v > f.Value
	case PurityLTE:
		return v <= f.Value
	case PurityLT:
		return v < f.Value
	default:
		return v == f.Value
	}
}

// looseFloat coerción numérica laxa: quita "%", recorta espacios y toma el
// prefijo numérico más largo ([+-]digitos[.digitos]). Sin prefijo numérico
// devuelve 0.
func looseFloat(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	if s == "" {
		return 0
	}
	end := 0
	seenDigit := false
	seenDot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			end = i + 1
		case r == '.' && !seenDot:
			seenDot = true
			end = i + 1
		case (r == '+' || r == '-') && i == 0:
			end = i + 1
		default:
			goto done
		}
	}
done:
	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}
