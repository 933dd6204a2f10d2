package catalog

import "strings"

// Grade formatea la pureza como grado legible: agrega "%" final salvo que ya
// lo contenga (idempotente). Pureza vacía devuelve nil (serializa como null).
func Grade(purity string) *string {
	if purity == "" {
		return nil
	}
	g := purity
	if !strings.Contains(g, "%") {
		g += "%"
	}
	return &g
}
