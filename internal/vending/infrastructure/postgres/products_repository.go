package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/database"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, product_name, cost, amount_available, seller_id`

type ProductsRepository struct {
	querier database.QueryExecuter
}

func NewProductsRepository(querier database.QueryExecuter) *ProductsRepository {
	return &ProductsRepository{
		querier: querier,
	}
}

func (r *ProductsRepository) CreateProduct(ctx context.Context, querier database.Querier, sellerID int, draft domain.ProductDraft) (domain.Product, error) {
	creationSQL := `INSERT INTO products (product_name, cost, amount_available, seller_id)
			VALUES ($1, $2, $3, $4) RETURNING ` + productColumns

	product, err := scanProduct(querier.QueryRow(ctx, creationSQL, draft.Name, draft.Cost, draft.AmountAvailable, sellerID))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Product{}, &domain.ConflictError{Msg: fmt.Sprintf("product %s already exists", draft.Name)}
		}

		return domain.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) GetProductByID(ctx context.Context, productID int) (domain.Product, error) {
	querySQL := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.querier.QueryRow(ctx, querySQL, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d not found", productID)}
		}

		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) TryGetProductByName(ctx context.Context, querier database.Querier, name string) (domain.Product, bool, error) {
	querySQL := `SELECT ` + productColumns + ` FROM products WHERE product_name = $1`

	product, err := scanProduct(querier.QueryRow(ctx, querySQL, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, false, nil
		}

		return domain.Product{}, false, fmt.Errorf("failed to find product: %w", err)
	}

	return product, true, nil
}

func (r *ProductsRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	querySQL := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.querier.Query(ctx, querySQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

func (r *ProductsRepository) CountSellerProducts(ctx context.Context, querier database.Querier, sellerID int) (int, error) {
	countSQL := `SELECT COUNT(*) FROM products WHERE seller_id = $1`

	var count int
	err := querier.QueryRow(ctx, countSQL, sellerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count seller products: %w", err)
	}

	return count, nil
}

func (r *ProductsRepository) LockAndGetProduct(ctx context.Context, querier database.Querier, productID int) (domain.Product, error) {
	lockProductSQL := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`

	product, err := scanProduct(querier.QueryRow(ctx, lockProductSQL, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d not found", productID)}
		}

		return domain.Product{}, fmt.Errorf("failed to lock product row: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) UpdateProduct(ctx context.Context, executor database.Executor, product domain.Product) error {
	updateSQL := `UPDATE products SET product_name = $1, cost = $2, amount_available = $3 WHERE id = $4`

	tag, err := executor.Exec(ctx, updateSQL, product.Name, product.Cost, product.AmountAvailable, product.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return &domain.ConflictError{Msg: fmt.Sprintf("product %s already exists", product.Name)}
		}

		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d not found", product.ID)}
	}

	return nil
}

func (r *ProductsRepository) DeleteProduct(ctx context.Context, productID int) error {
	deleteSQL := `DELETE FROM products WHERE id = $1`

	tag, err := r.querier.Exec(ctx, deleteSQL, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d not found", productID)}
	}

	return nil
}

func (r *ProductsRepository) DecrementStock(ctx context.Context, executor database.Executor, productID int, amount uint32) error {
	decrementSQL := `UPDATE products SET amount_available = amount_available - $1 WHERE id = $2 AND amount_available >= $1`

	tag, err := executor.Exec(ctx, decrementSQL, amount, productID)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.InsufficientStockError{Msg: "insufficient stock"}
	}

	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var product domain.Product

	err := row.Scan(&product.ID, &product.Name, &product.Cost, &product.AmountAvailable, &product.SellerID)
	if err != nil {
		return domain.Product{}, err
	}

	return product, nil
}
