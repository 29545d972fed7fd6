package application

import (
	"context"
	"fmt"

	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
)

type DepositCase struct {
	authorizer      *Authorizer
	usersRepository domain.UsersRepository
}

func NewDepositCase(authorizer *Authorizer, usersRepository domain.UsersRepository) *DepositCase {
	return &DepositCase{
		authorizer:      authorizer,
		usersRepository: usersRepository,
	}
}

func (dc *DepositCase) Deposit(ctx context.Context, callerID, userID int, amount uint32) (uint32, error) {
	if !domain.IsAcceptedCoin(amount) {
		return 0, &domain.InvalidArgumentsError{
			Msg: fmt.Sprintf("coin %d is not accepted, use one of %v", amount, domain.AcceptedCoins),
		}
	}

	if err := dc.requireSelfBuyer(ctx, callerID, userID); err != nil {
		return 0, err
	}

	return dc.usersRepository.IncrementDeposit(ctx, userID, amount)
}

func (dc *DepositCase) Reset(ctx context.Context, callerID, userID int) (uint32, error) {
	if err := dc.requireSelfBuyer(ctx, callerID, userID); err != nil {
		return 0, err
	}

	return dc.usersRepository.ResetDeposit(ctx, userID)
}

func (dc *DepositCase) requireSelfBuyer(ctx context.Context, callerID, userID int) error {
	if !dc.authorizer.RequireSelf(userID, callerID) {
		return notSelf()
	}

	isBuyer, err := dc.authorizer.RequireRole(ctx, callerID, domain.RoleBuyer)
	if err != nil {
		return err
	}

	if !isBuyer {
		return notABuyer()
	}

	return nil
}
