package ordering

import (
	"context"

	domain "github.com/smilepoint/dental-clinic/internal/domain/ordering"
	"github.com/smilepoint/dental-clinic/internal/models"
)

type ListOrders struct {
	repo domain.Repository
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo}
}

func (uc *ListOrders) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Order, error) {
	return uc.repo.ListForUser(ctx, userID)
}
