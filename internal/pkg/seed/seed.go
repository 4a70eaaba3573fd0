package seed

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/SandeshLive/Sandesh/app/models"
	"github.com/SandeshLive/Sandesh/app/repository"
	"github.com/SandeshLive/Sandesh/internal/pkg/env"
)

// Run performs the idempotent ensure-exists initialization: the default
// category set and the seed admin account. It is called once before the
// server starts accepting traffic; re-running never duplicates rows.
func Run(repos *repository.Repositories) error {
	if err := ensureCategories(repos.Category); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := ensureAdmin(repos.Admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func ensureCategories(repo repository.CategoryRepository) error {
	for _, c := range models.DefaultCategories {
		exists, err := repo.NameExists(c.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		category := c
		if err := repo.Create(&category); err != nil {
			return err
		}
		log.Infof("[Seed] created category %s", c.Name)
	}
	return nil
}

func ensureAdmin(repo repository.AdminRepository) error {
	email := env.GetEnv("ADMIN_EMAIL", "admin@sandeshlive.in")
	password := env.GetEnv("ADMIN_PASSWORD", "admin123")
	name := env.GetEnv("ADMIN_NAME", "व्यवस्थापक")

	existing, err := repo.GetByEmail(email)
	switch {
	case err == nil:
		// Refresh the password only when explicitly requested.
		if env.GetEnv("ADMIN_RESET_PASSWORD", "false") == "true" {
			if err := existing.SetPassword(password); err != nil {
				return err
			}
			if err := repo.Update(existing); err != nil {
				return err
			}
			log.Warnf("[Seed] reset password for %s", email)
		}
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		// A transient lookup failure must not turn into a duplicate create.
		return err
	}

	admin, err := models.CreateAdmin(name, email, password, models.ROLE_ADMIN)
	if err != nil {
		return err
	}
	if err := repo.Create(admin); err != nil {
		return err
	}
	log.Infof("[Seed] created admin account %s", email)
	return nil
}
