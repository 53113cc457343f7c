package repo

import (
	"context"

	"gallery-server/internal/model"
)

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdateByID(ctx context.Context, userID uint, updates map[string]interface{}) error
}
