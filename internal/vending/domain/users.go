package domain

import (
	"context"
	"fmt"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/database"
)

//go:generate mockgen -source=users.go -destination=../../../gen/mocks/vending/users.go -package=mocks

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleBuyer, RoleSeller:
		return Role(value), nil
	default:
		return "", &InvalidArgumentsError{Msg: fmt.Sprintf("unknown role %q", value)}
	}
}

type User struct {
	ID           int
	Username     string
	PasswordHash string
	Role         Role
	Deposit      uint32
}

// UserPatch holds the fields of a partial account update; nil fields are kept.
type UserPatch struct {
	Username *string
	Password *string
	Role     *Role
}

// UsersRepository methods that take a querier or executor run inside the
// caller's transaction, the rest use the repository's own connection.
type UsersRepository interface {
	CreateUser(ctx context.Context, querier database.Querier, username, passwordHash string, role Role) (User, error)
	GetUserByID(ctx context.Context, userID int) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	TryGetUserByUsername(ctx context.Context, querier database.Querier, username string) (User, bool, error)
	ListUsers(ctx context.Context) ([]User, error)
	LockAndGetUser(ctx context.Context, querier database.Querier, userID int) (User, error)
	UpdateUser(ctx context.Context, executor database.Executor, user User) error
	DeleteUser(ctx context.Context, executor database.Executor, userID int) error
	IncrementDeposit(ctx context.Context, userID int, amount uint32) (uint32, error)
	ResetDeposit(ctx context.Context, userID int) (uint32, error)
	WithdrawDeposit(ctx context.Context, executor database.Executor, userID int, amount uint32) error
}
