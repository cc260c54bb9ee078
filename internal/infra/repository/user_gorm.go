package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/smilepoint/dental-clinic/internal/domain/identity"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/models"
)

// postgres unique_violation
const pgUniqueViolation = "23505"

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) GetUserByPhone(
	ctx context.Context,
	phoneNumber string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {

	err := r.db.WithContext(ctx).Create(user).Error
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return httperr.ErrBusiness(domain.ErrCodeDuplicateUser)
	}

	return err
}

func (r *UserGormRepository) UpdateProfileImage(
	ctx context.Context,
	userID uint,
	url string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_image_url", url).Error
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
