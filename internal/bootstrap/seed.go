package bootstrap

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/example/orderdesk/internal/config"
	"github.com/example/orderdesk/internal/models"
	"github.com/example/orderdesk/internal/repository"
	"github.com/example/orderdesk/internal/utils"
)

// EnsureUser creates the configured login user when it does not exist
// yet. Accounts are only ever created here; the API has no signup.
func EnsureUser(ctx context.Context, users repository.UserRepository, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	if _, err := users.FindByUsername(ctx, cfg.AdminUsername); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
	}
	if err := users.Create(ctx, &user); err != nil {
		return err
	}

	log.Printf("seeded login user %q", user.Username)
	return nil
}
