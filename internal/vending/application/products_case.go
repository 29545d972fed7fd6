package application

import (
	"context"
	"fmt"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/database"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
)

type ProductsCase struct {
	authorizer         *Authorizer
	usersRepository    domain.UsersRepository
	productsRepository domain.ProductsRepository
	txManager          database.TxManager
}

func NewProductsCase(
	authorizer *Authorizer,
	usersRepository domain.UsersRepository,
	productsRepository domain.ProductsRepository,
	txManager database.TxManager,
) *ProductsCase {
	return &ProductsCase{
		authorizer:         authorizer,
		usersRepository:    usersRepository,
		productsRepository: productsRepository,
		txManager:          txManager,
	}
}

func (pc *ProductsCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return pc.productsRepository.ListProducts(ctx)
}

func (pc *ProductsCase) GetProduct(ctx context.Context, productID int) (domain.Product, error) {
	return pc.productsRepository.GetProductByID(ctx, productID)
}

func (pc *ProductsCase) CreateProduct(ctx context.Context, sellerID int, draft domain.ProductDraft) (domain.Product, error) {
	if err := pc.requireSeller(ctx, sellerID); err != nil {
		return domain.Product{}, err
	}

	draft.Name = domain.NormalizeName(draft.Name)
	if err := validateProductFields(draft.Name, draft.Cost); err != nil {
		return domain.Product{}, err
	}

	if !domain.IsStorableAmount(draft.AmountAvailable) {
		return domain.Product{}, invalidStock(draft.AmountAvailable)
	}

	var created domain.Product
	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		// the seller row lock orders this insert against a concurrent role change
		seller, err := pc.usersRepository.LockAndGetUser(ctx, executor, sellerID)
		if err != nil {
			return err
		}

		if seller.Role != domain.RoleSeller {
			return notASeller()
		}

		if err := pc.ensureNameIsFree(ctx, executor, draft.Name, 0); err != nil {
			return err
		}

		created, err = pc.productsRepository.CreateProduct(ctx, executor, sellerID, draft)
		return err
	})

	if err != nil {
		return domain.Product{}, translateTxError(err)
	}

	return created, nil
}

func (pc *ProductsCase) UpdateProduct(ctx context.Context, sellerID, productID int, patch domain.ProductPatch) (domain.Product, error) {
	if err := pc.requireOwningSeller(ctx, sellerID, productID); err != nil {
		return domain.Product{}, err
	}

	if patch.Name != nil {
		name := domain.NormalizeName(*patch.Name)
		if name == "" {
			return domain.Product{}, &domain.InvalidArgumentsError{Msg: "product name must not be empty"}
		}
		patch.Name = &name
	}

	if patch.Cost != nil && !domain.IsValidCost(*patch.Cost) {
		return domain.Product{}, invalidCost(*patch.Cost)
	}

	if patch.AmountAvailable != nil && !domain.IsStorableAmount(*patch.AmountAvailable) {
		return domain.Product{}, invalidStock(*patch.AmountAvailable)
	}

	var updated domain.Product
	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		product, err := pc.productsRepository.LockAndGetProduct(ctx, executor, productID)
		if err != nil {
			return err
		}

		if product.SellerID != sellerID {
			return &domain.AuthorizationError{Msg: "product belongs to another seller"}
		}

		if patch.Name != nil && *patch.Name != product.Name {
			if err := pc.ensureNameIsFree(ctx, executor, *patch.Name, product.ID); err != nil {
				return err
			}
			product.Name = *patch.Name
		}

		if patch.Cost != nil {
			product.Cost = *patch.Cost
		}

		if patch.AmountAvailable != nil {
			product.AmountAvailable = *patch.AmountAvailable
		}

		if err := pc.productsRepository.UpdateProduct(ctx, executor, product); err != nil {
			return err
		}

		updated = product
		return nil
	})

	if err != nil {
		return domain.Product{}, translateTxError(err)
	}

	return updated, nil
}

func (pc *ProductsCase) DeleteProduct(ctx context.Context, sellerID, productID int) error {
	if err := pc.requireOwningSeller(ctx, sellerID, productID); err != nil {
		return err
	}

	return pc.productsRepository.DeleteProduct(ctx, productID)
}

func (pc *ProductsCase) requireSeller(ctx context.Context, sellerID int) error {
	isSeller, err := pc.authorizer.RequireRole(ctx, sellerID, domain.RoleSeller)
	if err != nil {
		return err
	}

	if !isSeller {
		return notASeller()
	}

	return nil
}

func (pc *ProductsCase) requireOwningSeller(ctx context.Context, sellerID, productID int) error {
	if err := pc.requireSeller(ctx, sellerID); err != nil {
		return err
	}

	isOwner, err := pc.authorizer.RequireOwnership(ctx, productID, sellerID)
	if err != nil {
		return err
	}

	if !isOwner {
		return &domain.AuthorizationError{Msg: "product belongs to another seller"}
	}

	return nil
}

// ensureNameIsFree treats a product with exceptID as not conflicting.
func (pc *ProductsCase) ensureNameIsFree(ctx context.Context, querier database.Querier, name string, exceptID int) error {
	existing, found, err := pc.productsRepository.TryGetProductByName(ctx, querier, name)
	if err != nil {
		return err
	}

	if found && existing.ID != exceptID {
		return &domain.ConflictError{Msg: fmt.Sprintf("product %s already exists", name)}
	}

	return nil
}

func validateProductFields(name string, cost uint32) error {
	if name == "" {
		return &domain.InvalidArgumentsError{Msg: "product name must not be empty"}
	}

	if !domain.IsValidCost(cost) {
		return invalidCost(cost)
	}

	return nil
}

func invalidCost(cost uint32) error {
	return &domain.InvalidArgumentsError{
		Msg: fmt.Sprintf("cost %d must be a positive multiple of %d", cost, domain.SmallestCoin),
	}
}

func invalidStock(amount uint32) error {
	return &domain.InvalidArgumentsError{
		Msg: fmt.Sprintf("amount available %d exceeds the limit of %d", amount, domain.MaxStoredAmount),
	}
}
