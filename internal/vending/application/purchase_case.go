package application

import (
	"context"
	"fmt"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/database"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
)

type PurchaseCase struct {
	authorizer         *Authorizer
	usersRepository    domain.UsersRepository
	productsRepository domain.ProductsRepository
	txManager          database.TxManager
}

func NewPurchaseCase(
	authorizer *Authorizer,
	usersRepository domain.UsersRepository,
	productsRepository domain.ProductsRepository,
	txManager database.TxManager,
) *PurchaseCase {
	return &PurchaseCase{
		authorizer:         authorizer,
		usersRepository:    usersRepository,
		productsRepository: productsRepository,
		txManager:          txManager,
	}
}

// Buy checks its preconditions in a fixed order and reports the first one
// that fails. The product row is locked before the buyer row.
func (pc *PurchaseCase) Buy(ctx context.Context, buyerID, productID int, amount uint32) (domain.PurchaseReceipt, error) {
	isBuyer, err := pc.authorizer.RequireRole(ctx, buyerID, domain.RoleBuyer)
	if err != nil {
		return domain.PurchaseReceipt{}, err
	}

	if !isBuyer {
		return domain.PurchaseReceipt{}, notABuyer()
	}

	var receipt domain.PurchaseReceipt
	err = pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		product, err := pc.productsRepository.LockAndGetProduct(ctx, executor, productID)
		if err != nil {
			return err
		}

		buyer, err := pc.usersRepository.LockAndGetUser(ctx, executor, buyerID)
		if err != nil {
			return err
		}

		if amount < 1 {
			return &domain.InvalidArgumentsError{Msg: "amount must be at least 1"}
		}

		total := uint64(product.Cost) * uint64(amount)
		if total > uint64(buyer.Deposit) {
			return &domain.InsufficientFundsError{
				Msg: fmt.Sprintf("insufficient funds: %d needed, %d deposited", total, buyer.Deposit),
			}
		}

		if product.AmountAvailable == 0 {
			return &domain.OutOfStockError{Msg: fmt.Sprintf("product %s is out of stock", product.Name)}
		}

		if amount > product.AmountAvailable {
			return &domain.InsufficientStockError{
				Msg: fmt.Sprintf("only %d units of %s available", product.AmountAvailable, product.Name),
			}
		}

		err = pc.productsRepository.DecrementStock(ctx, executor, product.ID, amount)
		if err != nil {
			return err
		}

		// total fits in uint32 since it does not exceed the deposit
		spent := uint32(total)
		err = pc.usersRepository.WithdrawDeposit(ctx, executor, buyer.ID, spent)
		if err != nil {
			return err
		}

		receipt = domain.PurchaseReceipt{
			ProductName:     product.Name,
			AmountPurchased: amount,
			TotalSpent:      spent,
			Change:          domain.BreakIntoCoins(buyer.Deposit - spent),
		}

		return nil
	})

	if err != nil {
		return domain.PurchaseReceipt{}, translateTxError(err)
	}

	return receipt, nil
}
