package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/database"
	"github.com/MikhailWahib/vending-machine-api/internal/pkg/jwt"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
)

type AccountCase struct {
	authorizer         *Authorizer
	usersRepository    domain.UsersRepository
	productsRepository domain.ProductsRepository
	passwordHasher     domain.PasswordHasher
	tokenIssuer        jwt.TokenIssuer
	tokenRevoker       domain.TokenRevoker
	txManager          database.TxManager
	secretKey          []byte
	tokenTTL           time.Duration
}

func NewAccountCase(
	authorizer *Authorizer,
	usersRepository domain.UsersRepository,
	productsRepository domain.ProductsRepository,
	passwordHasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	tokenRevoker domain.TokenRevoker,
	txManager database.TxManager,
	secretKey string,
	tokenTTL time.Duration,
) *AccountCase {
	if tokenTTL <= 0 {
		tokenTTL = jwt.DefaultTokenTTL
	}

	return &AccountCase{
		authorizer:         authorizer,
		usersRepository:    usersRepository,
		productsRepository: productsRepository,
		passwordHasher:     passwordHasher,
		tokenIssuer:        tokenIssuer,
		tokenRevoker:       tokenRevoker,
		txManager:          txManager,
		secretKey:          []byte(secretKey),
		tokenTTL:           tokenTTL,
	}
}

func (ac *AccountCase) Register(ctx context.Context, username, password string, role domain.Role) (domain.User, error) {
	username = domain.NormalizeName(username)
	if username == "" {
		return domain.User{}, &domain.InvalidArgumentsError{Msg: "username must not be empty"}
	}

	if role == "" {
		role = domain.RoleBuyer
	}

	if _, err := domain.ParseRole(string(role)); err != nil {
		return domain.User{}, err
	}

	hashedPassword, err := ac.passwordHasher.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	var created domain.User
	err = ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		_, found, err := ac.usersRepository.TryGetUserByUsername(ctx, executor, username)
		if err != nil {
			return err
		}

		if found {
			return &domain.ConflictError{Msg: fmt.Sprintf("username %s is already taken", username)}
		}

		created, err = ac.usersRepository.CreateUser(ctx, executor, username, hashedPassword, role)
		return err
	})

	if err != nil {
		return domain.User{}, translateTxError(err)
	}

	return created, nil
}

// Authenticate answers an unknown username and a wrong password with the
// same error.
func (ac *AccountCase) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := ac.usersRepository.GetUserByUsername(ctx, domain.NormalizeName(username))
	if err != nil {
		if errors.Is(err, &domain.UserNotFoundError{}) {
			return "", credentialsMismatch()
		}

		return "", err
	}

	valid, err := ac.passwordHasher.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", err
	}

	if !valid {
		return "", credentialsMismatch()
	}

	return ac.tokenIssuer.IssueToken(ac.secretKey, user.ID, ac.tokenTTL)
}

// Logout keeps the token id revoked until the token would expire anyway.
func (ac *AccountCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if tokenID == "" || ttl <= 0 {
		return nil
	}

	return ac.tokenRevoker.Revoke(ctx, tokenID, ttl)
}

func (ac *AccountCase) GetUser(ctx context.Context, userID int) (domain.User, error) {
	return ac.usersRepository.GetUserByID(ctx, userID)
}

func (ac *AccountCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return ac.usersRepository.ListUsers(ctx)
}

func (ac *AccountCase) UpdateUser(ctx context.Context, callerID, userID int, patch domain.UserPatch) (domain.User, error) {
	if !ac.authorizer.RequireSelf(userID, callerID) {
		return domain.User{}, notSelf()
	}

	if patch.Username != nil {
		username := domain.NormalizeName(*patch.Username)
		if username == "" {
			return domain.User{}, &domain.InvalidArgumentsError{Msg: "username must not be empty"}
		}
		patch.Username = &username
	}

	if patch.Role != nil {
		if _, err := domain.ParseRole(string(*patch.Role)); err != nil {
			return domain.User{}, err
		}
	}

	var newHash string
	if patch.Password != nil {
		hash, err := ac.passwordHasher.HashPassword(*patch.Password)
		if err != nil {
			return domain.User{}, err
		}
		newHash = hash
	}

	var updated domain.User
	err := ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		user, err := ac.usersRepository.LockAndGetUser(ctx, executor, userID)
		if err != nil {
			return err
		}

		if patch.Username != nil && *patch.Username != user.Username {
			existing, found, err := ac.usersRepository.TryGetUserByUsername(ctx, executor, *patch.Username)
			if err != nil {
				return err
			}

			if found && existing.ID != user.ID {
				return &domain.ConflictError{Msg: fmt.Sprintf("username %s is already taken", *patch.Username)}
			}
			user.Username = *patch.Username
		}

		if newHash != "" {
			user.PasswordHash = newHash
		}

		if patch.Role != nil && *patch.Role != user.Role {
			if err := ac.ensureRoleChangeAllowed(ctx, executor, user, *patch.Role); err != nil {
				return err
			}
			user.Role = *patch.Role
		}

		if err := ac.usersRepository.UpdateUser(ctx, executor, user); err != nil {
			return err
		}

		updated = user
		return nil
	})

	if err != nil {
		return domain.User{}, translateTxError(err)
	}

	return updated, nil
}

// DeleteUser refuses to remove a seller that still owns products.
func (ac *AccountCase) DeleteUser(ctx context.Context, callerID, userID int) error {
	if !ac.authorizer.RequireSelf(userID, callerID) {
		return notSelf()
	}

	err := ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		user, err := ac.usersRepository.LockAndGetUser(ctx, executor, userID)
		if err != nil {
			return err
		}

		if err := ac.ensureNoOwnedProducts(ctx, executor, user.ID); err != nil {
			return err
		}

		return ac.usersRepository.DeleteUser(ctx, executor, user.ID)
	})

	return translateTxError(err)
}

func (ac *AccountCase) ensureRoleChangeAllowed(ctx context.Context, querier database.Querier, user domain.User, newRole domain.Role) error {
	switch newRole {
	case domain.RoleSeller:
		if user.Deposit > 0 {
			return &domain.ConflictError{Msg: "reset the deposit before becoming a seller"}
		}
	case domain.RoleBuyer:
		return ac.ensureNoOwnedProducts(ctx, querier, user.ID)
	}

	return nil
}

func (ac *AccountCase) ensureNoOwnedProducts(ctx context.Context, querier database.Querier, userID int) error {
	count, err := ac.productsRepository.CountSellerProducts(ctx, querier, userID)
	if err != nil {
		return err
	}

	if count > 0 {
		return &domain.ConflictError{Msg: fmt.Sprintf("user still owns %d products", count)}
	}

	return nil
}

func credentialsMismatch() error {
	return &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
}
