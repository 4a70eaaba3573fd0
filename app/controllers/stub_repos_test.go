package controllers

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/SandeshLive/Sandesh/app/models"
	"github.com/SandeshLive/Sandesh/app/repository"
)

// In-memory repository stubs. They implement just enough of the interfaces
// to drive the handlers through fiber's app.Test.

type stubNewsRepo struct {
	items  []*models.News
	nextID uint
}

func newStubNewsRepo() *stubNewsRepo {
	return &stubNewsRepo{nextID: 1}
}

func (r *stubNewsRepo) Create(news *models.News) error {
	news.ID = r.nextID
	r.nextID++
	r.items = append(r.items, news)
	return nil
}

// GetByID hands out a copy, like a fresh row scan would; callers mutating
// the result must go through Update to persist anything.
func (r *stubNewsRepo) GetByID(id uint) (*models.News, error) {
	for _, n := range r.items {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubNewsRepo) GetPublishedByID(id uint) (*models.News, error) {
	n, err := r.GetByID(id)
	if err != nil || !n.IsPublished {
		return nil, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (r *stubNewsRepo) GetBySlug(slug string) (*models.News, error) {
	for _, n := range r.items {
		if n.SlugValue() == slug && slug != "" {
			cp := *n
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubNewsRepo) GetPublishedBySlug(slug string) (*models.News, error) {
	n, err := r.GetBySlug(slug)
	if err != nil || !n.IsPublished {
		return nil, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (r *stubNewsRepo) List(filter repository.NewsFilter, offset, limit int) ([]models.News, error) {
	var out []models.News
	for _, n := range r.items {
		if filter.PublishedOnly && !n.IsPublished {
			continue
		}
		if filter.Category != "" && n.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(n.Title, filter.Search) {
			continue
		}
		out = append(out, *n)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubNewsRepo) Count(filter repository.NewsFilter) (int64, error) {
	all, _ := r.List(filter, 0, len(r.items))
	return int64(len(all)), nil
}

func (r *stubNewsRepo) Update(news *models.News) error {
	for i, n := range r.items {
		if n.ID == news.ID {
			r.items[i] = news
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubNewsRepo) Delete(id uint) error {
	for i, n := range r.items {
		if n.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubNewsRepo) SlugExists(slug string) (bool, error) {
	_, err := r.GetBySlug(slug)
	return err == nil, nil
}

func (r *stubNewsRepo) SlugExistsExceptID(slug string, id uint) (bool, error) {
	n, err := r.GetBySlug(slug)
	return err == nil && n.ID != id, nil
}

type stubCategoryRepo struct {
	items  []*models.Category
	nextID uint
}

func newStubCategoryRepo(names ...string) *stubCategoryRepo {
	r := &stubCategoryRepo{nextID: 1}
	for _, name := range names {
		r.Create(&models.Category{Name: name})
	}
	return r
}

func (r *stubCategoryRepo) Create(category *models.Category) error {
	category.ID = r.nextID
	r.nextID++
	r.items = append(r.items, category)
	return nil
}

func (r *stubCategoryRepo) GetByID(id uint) (*models.Category, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) GetByName(name string) (*models.Category, error) {
	for _, c := range r.items {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) GetAll() ([]models.Category, error) {
	out := make([]models.Category, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCategoryRepo) Update(category *models.Category) error {
	for i, c := range r.items {
		if c.ID == category.ID {
			r.items[i] = category
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Delete(id uint) error {
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) NameExists(name string) (bool, error) {
	_, err := r.GetByName(name)
	return err == nil, nil
}

type stubMarqueeRepo struct {
	items  []*models.MarqueeContent
	nextID uint
}

func newStubMarqueeRepo() *stubMarqueeRepo {
	return &stubMarqueeRepo{nextID: 1}
}

func (r *stubMarqueeRepo) Create(item *models.MarqueeContent) error {
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return nil
}

func (r *stubMarqueeRepo) GetByID(id uint) (*models.MarqueeContent, error) {
	for _, m := range r.items {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMarqueeRepo) GetActive(marqueeType string) ([]models.MarqueeContent, error) {
	out := []models.MarqueeContent{}
	for _, m := range r.items {
		if !m.IsActive {
			continue
		}
		if marqueeType != "" && m.Type != marqueeType {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *stubMarqueeRepo) GetAll() ([]models.MarqueeContent, error) {
	out := make([]models.MarqueeContent, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMarqueeRepo) Update(item *models.MarqueeContent) error {
	for i, m := range r.items {
		if m.ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubMarqueeRepo) Delete(id uint) error {
	for i, m := range r.items {
		if m.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type stubAdminRepo struct {
	items  []*models.Admin
	nextID uint
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{nextID: 1}
}

func (r *stubAdminRepo) Create(admin *models.Admin) error {
	admin.ID = r.nextID
	r.nextID++
	r.items = append(r.items, admin)
	return nil
}

func (r *stubAdminRepo) GetByID(id uint) (*models.Admin, error) {
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	for _, a := range r.items {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) Update(admin *models.Admin) error {
	for i, a := range r.items {
		if a.ID == admin.ID {
			r.items[i] = admin
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
