package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/catalog"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, category_id, location_id, name, slug, description, price, purity, status, detail, created_by, created_at, updated_at, deleted_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El slug único lo garantiza la constraint.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULL)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.LocationID, product.Name, product.Slug,
		product.Description, product.Price, product.Purity, product.Status, product.Detail,
		product.CreatedBy, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto activo por ID (nil si no existe o está borrado).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`id::text = $1 AND deleted_at IS NULL`, id)
}

// GetBySlug obtiene un producto activo por slug.
func (r *ProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	return r.getOne(`slug = $1 AND deleted_at IS NULL`, slug)
}

func (r *ProductRepo) getOne(where string, arg any) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + where
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. Slug y created_by no se tocan.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, location_id = $3, name = $4, description = $5,
		    price = $6, purity = $7, status = $8, detail = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.LocationID, product.Name,
		product.Description, product.Price, product.Purity, product.Status,
		product.Detail, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List productos filtrados, de más nuevo a más viejo.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	where, args := filterSQL(filter)
	query := `SELECT ` + productColumns + ` FROM products p ` + where +
		` ORDER BY p.created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count total de productos que matchean el filtro (para metadatos de página).
func (r *ProductRepo) Count(filter repository.ProductFilter) (int, error) {
	where, args := filterSQL(filter)
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products p `+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// SoftDelete marca el producto como borrado; desaparece de lo público.
func (r *ProductRepo) SoftDelete(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

// Restore revierte el borrado suave.
func (r *ProductRepo) Restore(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET deleted_at = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore product: %w", err)
	}
	return nil
}

// ForceDelete elimina la fila definitivamente (taggables cae por cascade).
func (r *ProductRepo) ForceDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("force delete product: %w", err)
	}
	return nil
}

// filterSQL traduce ProductFilter a cláusula WHERE + args. Los filtros se
// combinan con AND; el match de categoría/ubicación es OR entre id, slug y
// nombre. La pureza se castea a NUMERIC en la comparación (el valor guardado
// es texto).
func filterSQL(f repository.ProductFilter) (string, []any) {
	var conds []string
	var args []any

	switch {
	case f.OnlyTrashed:
		conds = append(conds, "p.deleted_at IS NOT NULL")
	case f.WithTrashed:
		// sin condición
	default:
		conds = append(conds, "p.deleted_at IS NULL")
	}

	if f.Category != "" {
		args = append(args, f.Category)
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(p.category_id::text = $%d OR EXISTS (
			SELECT 1 FROM categories c
			WHERE c.id = p.category_id AND c.deleted_at IS NULL
			  AND (c.slug = $%d OR c.name = $%d)))`, n, n, n))
	}
	if f.Location != "" {
		args = append(args, f.Location)
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(p.location_id::text = $%d OR EXISTS (
			SELECT 1 FROM locations l
			WHERE l.id = p.location_id AND l.name = $%d))`, n, n))
	}
	if f.Purity != nil {
		switch f.Purity.Op {
		case catalog.PurityBetween:
			args = append(args, f.Purity.Min, f.Purity.Max)
			conds = append(conds, fmt.Sprintf("CAST(p.purity AS NUMERIC) BETWEEN $%d AND $%d", len(args)-1, len(args)))
		default:
			args = append(args, f.Purity.Value)
			conds = append(conds, fmt.Sprintf("CAST(p.purity AS NUMERIC) %s $%d", purityOpSQL(f.Purity.Op), len(args)))
		}
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func purityOpSQL(op catalog.PurityOp) string {
	switch op {
	case catalog.PurityGTE:
		return ">="
	case catalog.PurityGT:
		return ">"
	case catalog.PurityLTE:
		return "<="
	case catalog.PurityLT:
		return "<"
	default:
		return "="
	}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.LocationID, &p.Name, &p.Slug, &p.Description,
		&p.Price, &p.Purity, &p.Status, &p.Detail, &p.CreatedBy,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
