package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type User struct {
	ID             uuid.UUID
	Username       string
	HashedPassword string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	CreatedAt      time.Time
}

func (u *User) Profile() *Profile {
	return &Profile{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

type UserRepository interface {
	NextID() (uuid.UUID, error)
	Create(user *User) error
	Find(id uuid.UUID) (*User, error)
	FindByUsername(username string) (*User, error)
}

type PasswordManager interface {
	Hash(plainTextPassword string) (string, error)
	Check(hashedPassword, plainTextPassword string) (bool, error)
}

type TokenIssuer interface {
	Issue(user *User) (string, error)
	// Parse returns the user ID carried by a valid token.
	Parse(token string) (uuid.UUID, error)
}
