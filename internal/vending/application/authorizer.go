package application

import (
	"context"
	"errors"

	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
)

// Authorizer answers role, ownership and self checks. It only reads and
// never turns a failed check into an error; callers decide what to return.
type Authorizer struct {
	usersRepository    domain.UsersRepository
	productsRepository domain.ProductsRepository
}

func NewAuthorizer(usersRepository domain.UsersRepository, productsRepository domain.ProductsRepository) *Authorizer {
	return &Authorizer{
		usersRepository:    usersRepository,
		productsRepository: productsRepository,
	}
}

// RequireRole reports false for a user that does not exist.
func (a *Authorizer) RequireRole(ctx context.Context, userID int, role domain.Role) (bool, error) {
	user, err := a.usersRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, &domain.UserNotFoundError{}) {
			return false, nil
		}

		return false, err
	}

	return user.Role == role, nil
}

// RequireOwnership returns *domain.ProductNotFoundError for a missing product.
func (a *Authorizer) RequireOwnership(ctx context.Context, productID, userID int) (bool, error) {
	product, err := a.productsRepository.GetProductByID(ctx, productID)
	if err != nil {
		return false, err
	}

	return product.SellerID == userID, nil
}

func (a *Authorizer) RequireSelf(pathUserID, callerUserID int) bool {
	return pathUserID == callerUserID
}
