package repository

import (
	"github.com/formlight/formlight/internal/domain/form"
	"gorm.io/gorm"
)

// FormRepo reads only live (non-soft-deleted) forms. Soft delete is the
// gorm.DeletedAt column on the model, so every query here filters it
// automatically; there is no second visibility predicate to keep in sync.
type FormRepo interface {
	CreateForm(f *form.Form) error
	GetFormByID(id string) (form.Form, error)
	GetFormBySlug(slug string) (form.Form, error)
	GetFormsByIDs(ids []string) ([]form.Form, error)
	ListForms() ([]form.Form, error)
	SoftDeleteForm(id string) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func (r *DBFormRepo) CreateForm(f *form.Form) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) GetFormByID(id string) (form.Form, error) {
	var f form.Form
	err := r.db.First(&f, "id = ?", id).Error
	return f, err
}

func (r *DBFormRepo) GetFormBySlug(slug string) (form.Form, error) {
	var f form.Form
	err := r.db.First(&f, "slug = ?", slug).Error
	return f, err
}

func (r *DBFormRepo) GetFormsByIDs(ids []string) ([]form.Form, error) {
	var forms []form.Form
	err := r.db.Where("id IN ?", ids).Order("created_at DESC").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) ListForms() ([]form.Form, error) {
	var forms []form.Form
	err := r.db.Order("created_at DESC").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) SoftDeleteForm(id string) error {
	return r.db.Delete(&form.Form{}, "id = ?", id).Error
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{
		db: tx,
	}
}
