package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/orderdesk/internal/models"
)

var _ UserRepository = (*GormUserRepo)(nil)

// GormUserRepo implements UserRepository on a gorm handle.
type GormUserRepo struct {
	db *gorm.DB
}

// NewUserRepository constructs GormUserRepo.
func NewUserRepository(db *gorm.DB) *GormUserRepo {
	return &GormUserRepo{db: db}
}

func (r *GormUserRepo) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *GormUserRepo) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}
