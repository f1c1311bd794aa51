package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// PostgresLoader reads the whole products table through the pgx pool,
// bypassing the ORM: the catalog reload is the hot path and wants a
// single flat scan. Row order is creation order, which the storefront
// treats as display order.
func PostgresLoader(pool *pgxpool.Pool) Loader {
	return func(ctx context.Context) ([]models.Product, error) {
		rows, err := pool.Query(ctx, `
			SELECT id, name, description, price, category, COALESCE(img_url, ''), sales, featured, slug, created_at, updated_at
			FROM products
			ORDER BY created_at, id
		`)
		if err != nil {
			return nil, fmt.Errorf("catalog load query: %w", err)
		}
		defer rows.Close()

		var products []models.Product
		for rows.Next() {
			var p models.Product
			if err := rows.Scan(
				&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
				&p.ImgURL, &p.Sales, &p.Featured, &p.Slug,
				&p.CreatedAt, &p.UpdatedAt,
			); err != nil {
				return nil, fmt.Errorf("catalog load scan: %w", err)
			}
			products = append(products, p)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("catalog load rows: %w", err)
		}
		return products, nil
	}
}
