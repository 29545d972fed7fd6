package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=services.go -destination=../../../gen/mocks/vending/services.go -package=mocks

type AccountService interface {
	Register(ctx context.Context, username, password string, role Role) (User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetUser(ctx context.Context, userID int) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, callerID, userID int, patch UserPatch) (User, error)
	DeleteUser(ctx context.Context, callerID, userID int) error
}

type DepositService interface {
	Deposit(ctx context.Context, callerID, userID int, amount uint32) (uint32, error)
	Reset(ctx context.Context, callerID, userID int) (uint32, error)
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, productID int) (Product, error)
	CreateProduct(ctx context.Context, sellerID int, draft ProductDraft) (Product, error)
	UpdateProduct(ctx context.Context, sellerID, productID int, patch ProductPatch) (Product, error)
	DeleteProduct(ctx context.Context, sellerID, productID int) error
}

type PurchaseService interface {
	Buy(ctx context.Context, buyerID, productID int, amount uint32) (PurchaseReceipt, error)
}
