package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v4"

	"catalog/condb"
	"catalog/models"
)

const productColumns = "product_id, product_name, price, product_image_url"

const (
	listQuery = "SELECT " + productColumns + " FROM products" +
		" ORDER BY product_id LIMIT $1 OFFSET $2"
	insertQuery = "INSERT INTO products (product_name, price, product_image_url)" +
		" VALUES ($1, $2, $3) RETURNING " + productColumns
)

// PG runs the catalog statements through the role-keyed connection pools.
type PG struct {
	pools *condb.Pools
}

func NewPG(pools *condb.Pools) *PG {
	return &PG{pools: pools}
}

func (s *PG) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	products := make([]models.Product, 0, 16)
	err := s.pools.RunQuery(ctx, condb.Replica, listQuery, []interface{}{limit, offset}, func(rows pgx.Rows) error {
		defer rows.Close()
		for rows.Next() {
			var p models.Product
			if err := rows.Scan(&p.ProductID, &p.Name, &p.Price, &p.ImageURL); err != nil {
				return err
			}
			products = append(products, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *PG) Create(ctx context.Context, in models.NewProduct) (models.Product, error) {
	args := []interface{}{in.Name, in.Price, in.ImageURL}
	return s.returningOne(ctx, insertQuery, args, ErrNoRowReturned)
}

func (s *PG) Update(ctx context.Context, id int, patch models.ProductPatch) (models.Product, error) {
	query, args := buildUpdate(id, patch)
	return s.returningOne(ctx, query, args, ErrNotFound)
}

// returningOne runs a write with a RETURNING clause on the primary and scans
// the single row it yields. missing is returned when no row comes back.
func (s *PG) returningOne(ctx context.Context, query string, args []interface{}, missing error) (models.Product, error) {
	var p models.Product
	found := false
	err := s.pools.RunQuery(ctx, condb.Primary, query, args, func(rows pgx.Rows) error {
		defer rows.Close()
		if rows.Next() {
			if err := rows.Scan(&p.ProductID, &p.Name, &p.Price, &p.ImageURL); err != nil {
				return err
			}
			found = true
		}
		return rows.Err()
	})
	if err != nil {
		return models.Product{}, err
	}
	if !found {
		return models.Product{}, missing
	}
	return p, nil
}

// buildUpdate assembles the UPDATE for the fields the patch carries, in a
// fixed column order. Column names are fixed literals; values only ever
// travel through numbered placeholders. The patch must carry at least one
// field.
func buildUpdate(id int, patch models.ProductPatch) (string, []interface{}) {
	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	ai := 1

	if patch.Name != nil {
		sets = append(sets, "product_name = $"+strconv.Itoa(ai))
		args = append(args, *patch.Name)
		ai++
	}
	if patch.Price != nil {
		sets = append(sets, "price = $"+strconv.Itoa(ai))
		args = append(args, *patch.Price)
		ai++
	}
	if patch.SetImage {
		sets = append(sets, "product_image_url = $"+strconv.Itoa(ai))
		args = append(args, patch.ImageURL)
		ai++
	}

	args = append(args, id)
	query := "UPDATE products SET " + strings.Join(sets, ", ") +
		" WHERE product_id = $" + strconv.Itoa(ai) +
		" RETURNING " + productColumns
	return query, args
}
