package domain

//go:generate mockgen -source=password_hashing.go -destination=../../../gen/mocks/vending/password_hashing.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
}
