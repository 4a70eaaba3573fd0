package seed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SandeshLive/Sandesh/app/models"
	"github.com/SandeshLive/Sandesh/app/repository"
)

type seedCategoryRepo struct {
	items []*models.Category
}

func (r *seedCategoryRepo) Create(c *models.Category) error {
	c.ID = uint(len(r.items) + 1)
	r.items = append(r.items, c)
	return nil
}

func (r *seedCategoryRepo) GetByID(uint) (*models.Category, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *seedCategoryRepo) GetByName(name string) (*models.Category, error) {
	for _, c := range r.items {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *seedCategoryRepo) GetAll() ([]models.Category, error) { return nil, nil }

func (r *seedCategoryRepo) Update(*models.Category) error { return nil }

func (r *seedCategoryRepo) Delete(uint) error { return nil }

func (r *seedCategoryRepo) NameExists(name string) (bool, error) {
	_, err := r.GetByName(name)
	return err == nil, nil
}

type seedAdminRepo struct {
	items     []*models.Admin
	lookupErr error
}

func (r *seedAdminRepo) Create(a *models.Admin) error {
	a.ID = uint(len(r.items) + 1)
	r.items = append(r.items, a)
	return nil
}

func (r *seedAdminRepo) GetByID(id uint) (*models.Admin, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *seedAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for _, a := range r.items {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *seedAdminRepo) Update(*models.Admin) error { return nil }

func TestRunIsIdempotent(t *testing.T) {
	categoryRepo := &seedCategoryRepo{}
	adminRepo := &seedAdminRepo{}
	repos := &repository.Repositories{Category: categoryRepo, Admin: adminRepo}

	require.NoError(t, Run(repos))
	assert.Len(t, categoryRepo.items, len(models.DefaultCategories))
	require.Len(t, adminRepo.items, 1)
	assert.True(t, adminRepo.items[0].IsActive)
	assert.Equal(t, models.ROLE_ADMIN, adminRepo.items[0].Role)

	// a second pass creates nothing new
	require.NoError(t, Run(repos))
	assert.Len(t, categoryRepo.items, len(models.DefaultCategories))
	assert.Len(t, adminRepo.items, 1)
}

func TestEnsureAdminSurfacesLookupErrors(t *testing.T) {
	lookupErr := errors.New("connection refused")
	adminRepo := &seedAdminRepo{lookupErr: lookupErr}
	repos := &repository.Repositories{Category: &seedCategoryRepo{}, Admin: adminRepo}

	err := Run(repos)
	require.Error(t, err)
	assert.ErrorIs(t, err, lookupErr)
	// no create was attempted on a failed lookup
	assert.Empty(t, adminRepo.items)
}
