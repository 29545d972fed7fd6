package domain

import (
	"context"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/database"
)

//go:generate mockgen -source=products.go -destination=../../../gen/mocks/vending/products.go -package=mocks

type Product struct {
	ID              int
	Name            string
	Cost            uint32
	AmountAvailable uint32
	SellerID        int
}

type ProductDraft struct {
	Name            string
	Cost            uint32
	AmountAvailable uint32
}

type ProductPatch struct {
	Name            *string
	Cost            *uint32
	AmountAvailable *uint32
}

type ProductsRepository interface {
	CreateProduct(ctx context.Context, querier database.Querier, sellerID int, draft ProductDraft) (Product, error)
	GetProductByID(ctx context.Context, productID int) (Product, error)
	TryGetProductByName(ctx context.Context, querier database.Querier, name string) (Product, bool, error)
	ListProducts(ctx context.Context) ([]Product, error)
	CountSellerProducts(ctx context.Context, querier database.Querier, sellerID int) (int, error)
	LockAndGetProduct(ctx context.Context, querier database.Querier, productID int) (Product, error)
	UpdateProduct(ctx context.Context, executor database.Executor, product Product) error
	DeleteProduct(ctx context.Context, productID int) error
	DecrementStock(ctx context.Context, executor database.Executor, productID int, amount uint32) error
}
