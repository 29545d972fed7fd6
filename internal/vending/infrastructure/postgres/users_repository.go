package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/database"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, password_hash, role, deposit`

type UsersRepository struct {
	querier database.QueryExecuter
}

func NewUsersRepository(querier database.QueryExecuter) *UsersRepository {
	return &UsersRepository{
		querier: querier,
	}
}

func (r *UsersRepository) CreateUser(ctx context.Context, querier database.Querier, username, passwordHash string, role domain.Role) (domain.User, error) {
	creationSQL := `INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3) RETURNING ` + userColumns

	user, err := scanUser(querier.QueryRow(ctx, creationSQL, username, passwordHash, string(role)))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.User{}, &domain.ConflictError{Msg: fmt.Sprintf("username %s is already taken", username)}
		}

		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UsersRepository) GetUserByID(ctx context.Context, userID int) (domain.User, error) {
	querySQL := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.querier.QueryRow(ctx, querySQL, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return domain.User{}, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func (r *UsersRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	user, found, err := r.TryGetUserByUsername(ctx, r.querier, username)
	if err != nil {
		return domain.User{}, err
	}

	if !found {
		return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user %s not found", username)}
	}

	return user, nil
}

func (r *UsersRepository) TryGetUserByUsername(ctx context.Context, querier database.Querier, username string) (domain.User, bool, error) {
	querySQL := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(querier.QueryRow(ctx, querySQL, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, false, nil
		}

		return domain.User{}, false, fmt.Errorf("failed to find user: %w", err)
	}

	return user, true, nil
}

func (r *UsersRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	querySQL := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.querier.Query(ctx, querySQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (r *UsersRepository) LockAndGetUser(ctx context.Context, querier database.Querier, userID int) (domain.User, error) {
	lockUserSQL := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	user, err := scanUser(querier.QueryRow(ctx, lockUserSQL, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return domain.User{}, fmt.Errorf("failed to lock user row: %w", err)
	}

	return user, nil
}

func (r *UsersRepository) UpdateUser(ctx context.Context, executor database.Executor, user domain.User) error {
	updateSQL := `UPDATE users SET username = $1, password_hash = $2, role = $3 WHERE id = $4`

	tag, err := executor.Exec(ctx, updateSQL, user.Username, user.PasswordHash, string(user.Role), user.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return &domain.ConflictError{Msg: fmt.Sprintf("username %s is already taken", user.Username)}
		}

		return fmt.Errorf("failed to update user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", user.ID)}
	}

	return nil
}

func (r *UsersRepository) DeleteUser(ctx context.Context, executor database.Executor, userID int) error {
	deleteSQL := `DELETE FROM users WHERE id = $1`

	tag, err := executor.Exec(ctx, deleteSQL, userID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return &domain.ConflictError{Msg: "user still owns products"}
		}

		return fmt.Errorf("failed to delete user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
	}

	return nil
}

// IncrementDeposit only touches buyer rows; a missing row means the user is
// gone or is no longer a buyer.
func (r *UsersRepository) IncrementDeposit(ctx context.Context, userID int, amount uint32) (uint32, error) {
	depositSQL := `UPDATE users SET deposit = deposit + $1 WHERE id = $2 AND role = 'buyer' RETURNING deposit`

	var deposit uint32
	err := r.querier.QueryRow(ctx, depositSQL, amount, userID).Scan(&deposit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.UserNotFoundError{Msg: fmt.Sprintf("buyer with id %d not found", userID)}
		}

		if database.IsNumericOutOfRange(err) {
			return 0, &domain.InvalidArgumentsError{Msg: "deposit limit exceeded"}
		}

		return 0, fmt.Errorf("failed to increment deposit: %w", err)
	}

	return deposit, nil
}

func (r *UsersRepository) ResetDeposit(ctx context.Context, userID int) (uint32, error) {
	resetSQL := `UPDATE users SET deposit = 0 WHERE id = $1 AND role = 'buyer' RETURNING deposit`

	var deposit uint32
	err := r.querier.QueryRow(ctx, resetSQL, userID).Scan(&deposit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.UserNotFoundError{Msg: fmt.Sprintf("buyer with id %d not found", userID)}
		}

		return 0, fmt.Errorf("failed to reset deposit: %w", err)
	}

	return deposit, nil
}

func (r *UsersRepository) WithdrawDeposit(ctx context.Context, executor database.Executor, userID int, amount uint32) error {
	withdrawSQL := `UPDATE users SET deposit = deposit - $1 WHERE id = $2 AND deposit >= $1`

	tag, err := executor.Exec(ctx, withdrawSQL, amount, userID)
	if err != nil {
		return fmt.Errorf("failed to withdraw deposit: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.InsufficientFundsError{Msg: "insufficient funds"}
	}

	return nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	var role string

	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &role, &user.Deposit)
	if err != nil {
		return domain.User{}, err
	}

	user.Role = domain.Role(role)
	return user, nil
}
