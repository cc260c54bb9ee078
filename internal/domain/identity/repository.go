package identity

import (
	"context"

	"github.com/smilepoint/dental-clinic/internal/models"
)

// Business error codes surfaced by implementations.
const (
	ErrCodeDuplicateUser = "duplicate_user"
)

type Repository interface {
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// GetUserByPhone returns (nil, nil) when no account exists.
	GetUserByPhone(
		ctx context.Context,
		phoneNumber string,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	UpdateProfileImage(
		ctx context.Context,
		userID uint,
		url string,
	) error
}
