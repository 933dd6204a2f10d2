// seed genera un script SQL con datos de demostración del catálogo:
// categorías, ubicaciones, etiquetas y productos de ejemplo con su media
// y una actividad inicial de creación.
//
// Uso: go run ./cmd/seed
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type category struct {
	id, name, slug, description string
}

type location struct {
	id, name, slug string
}

type tag struct {
	id, name, slug string
}

type product struct {
	id, categoryID, locationID string
	name, slug, description    string
	price, purity              string
	tagIDs                     []string
	thumbnail                  string
	images                     []string
}

var categories = []category{
	{"10000000-0000-0000-0000-000000000001", "Gold", "gold", "Oro de inversión en barras y lingotes"},
	{"10000000-0000-0000-0000-000000000002", "Silver", "silver", "Plata fina en lingotes"},
	{"10000000-0000-0000-0000-000000000003", "Platinum", "platinum", "Platino certificado"},
}

var locations = []location{
	{"20000000-0000-0000-0000-000000000001", "Dubai", "dubai"},
	{"20000000-0000-0000-0000-000000000002", "Ghana", "ghana"},
	{"20000000-0000-0000-0000-000000000003", "Zurich", "zurich"},
}

var tags = []tag{
	{"30000000-0000-0000-0000-000000000001", "22k", "22k"},
	{"30000000-0000-0000-0000-000000000002", "24k", "24k"},
	{"30000000-0000-0000-0000-000000000003", "Certified", "certified"},
}

var products = []product{
	{
		id: "40000000-0000-0000-0000-000000000001", categoryID: categories[0].id, locationID: locations[0].id,
		name: "Gold Bar 1kg", slug: "gold-bar-1kg", description: "Barra de oro de un kilogramo",
		price: "1000.00", purity: "99.5",
		tagIDs:    []string{tags[0].id, tags[2].id},
		thumbnail: "products/gold-bar-1kg.jpg",
		images:    []string{"products/gold-bar-1kg-front.jpg", "products/gold-bar-1kg-back.jpg"},
	},
	{
		id: "40000000-0000-0000-0000-000000000002", categoryID: categories[0].id, locationID: locations[1].id,
		name: "Gold Nugget 500g", slug: "gold-nugget-500g", description: "Pepita de oro natural",
		price: "520.50", purity: "92",
		tagIDs:    []string{tags[0].id},
		thumbnail: "products/gold-nugget-500g.jpg",
	},
	{
		id: "40000000-0000-0000-0000-000000000003", categoryID: categories[1].id, locationID: locations[2].id,
		name: "Silver Ingot 5kg", slug: "silver-ingot-5kg", description: "Lingote de plata fina",
		price: "450.00", purity: "99.9",
		tagIDs:    []string{tags[2].id},
		thumbnail: "products/silver-ingot-5kg.jpg",
	},
}

func main() {
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración del catálogo\n")
	out.WriteString("-- Generado por cmd/seed\n\n")

	out.WriteString("-- 1. Categorías\n")
	for _, c := range categories {
		fmt.Fprintf(out, "INSERT INTO categories (id, name, slug, description) VALUES ('%s', '%s', '%s', '%s')\n",
			c.id, escapeSQL(c.name), c.slug, escapeSQL(c.description))
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	}

	out.WriteString("\n-- 2. Ubicaciones\n")
	for _, l := range locations {
		fmt.Fprintf(out, "INSERT INTO locations (id, name, slug) VALUES ('%s', '%s', '%s')\n",
			l.id, escapeSQL(l.name), l.slug)
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	}

	out.WriteString("\n-- 3. Etiquetas\n")
	for _, t := range tags {
		fmt.Fprintf(out, "INSERT INTO tags (id, name, slug) VALUES ('%s', '%s', '%s')\n",
			t.id, escapeSQL(t.name), t.slug)
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	}

	out.WriteString("\n-- 4. Productos con etiquetas, media y actividad de creación\n")
	for i, p := range products {
		fmt.Fprintf(out, "INSERT INTO products (id, category_id, location_id, name, slug, description, price, purity) VALUES\n")
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', '%s', '%s', %s, '%s')\n",
			p.id, p.categoryID, p.locationID, escapeSQL(p.name), p.slug, escapeSQL(p.description), p.price, p.purity)
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")

		for _, tagID := range p.tagIDs {
			fmt.Fprintf(out, "INSERT INTO taggables (tag_id, taggable_id, taggable_type) VALUES ('%s', '%s', 'products')\n", tagID, p.id)
			out.WriteString("ON CONFLICT DO NOTHING;\n")
		}

		fmt.Fprintf(out, "INSERT INTO media (id, owner_type, owner_id, collection, file_path, position) VALUES\n")
		fmt.Fprintf(out, "  ('5000000%d-0000-0000-0000-00000000000a', 'products', '%s', 'thumbnail', '%s', 0)\n", i, p.id, p.thumbnail)
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
		for j, img := range p.images {
			fmt.Fprintf(out, "INSERT INTO media (id, owner_type, owner_id, collection, file_path, position) VALUES\n")
			fmt.Fprintf(out, "  ('5000000%d-0000-0000-0000-00000000010%d', 'products', '%s', 'images', '%s', %d)\n", i, j, p.id, img, j)
			out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
		}

		fmt.Fprintf(out, "INSERT INTO activities (id, log_name, description, subject_type, subject_id, properties) VALUES\n")
		fmt.Fprintf(out, "  ('6000000%d-0000-0000-0000-00000000000a', 'products', 'created', 'products', '%s',\n", i, p.id)
		fmt.Fprintf(out, "   '{\"attributes\": {\"price\": %s, \"purity\": \"%s\"}}')\n", p.price, p.purity)
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	}

	fmt.Printf("Generado %s: %d categorías, %d ubicaciones, %d etiquetas, %d productos\n",
		outPath, len(categories), len(locations), len(tags), len(products))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
