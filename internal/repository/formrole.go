package repository

import (
	"github.com/formlight/formlight/internal/domain/form"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FormRoleRepo interface {
	// UpsertFormRole writes the grant keyed by (form_id, user_id). The
	// conflict target is the composite primary key, so two concurrent
	// grants for the same pair serialize on the row and at most one
	// grant survives.
	UpsertFormRole(fr *form.FormRole) error
	DeleteFormRole(formID, userID string) error
	GetFormRole(formID, userID string) (form.FormRole, error)
	GetFormRolesByFormID(formID string) ([]form.FormRole, error)
	GetFormRolesByUserID(userID string) ([]form.FormRole, error)
	HasRole(formID, userID string, role form.Role) (bool, error)
	WithTx(tx *gorm.DB) FormRoleRepo
}

type DBFormRoleRepo struct {
	db *gorm.DB
}

func NewFormRoleRepo(db *gorm.DB) *DBFormRoleRepo {
	return &DBFormRoleRepo{
		db: db,
	}
}

func (r *DBFormRoleRepo) UpsertFormRole(fr *form.FormRole) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "form_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(fr).Error
}

func (r *DBFormRoleRepo) DeleteFormRole(formID, userID string) error {
	return r.db.Where("form_id = ? AND user_id = ?", formID, userID).Delete(&form.FormRole{}).Error
}

func (r *DBFormRoleRepo) GetFormRole(formID, userID string) (form.FormRole, error) {
	var fr form.FormRole
	err := r.db.First(&fr, "form_id = ? AND user_id = ?", formID, userID).Error
	return fr, err
}

func (r *DBFormRoleRepo) GetFormRolesByFormID(formID string) ([]form.FormRole, error) {
	var roles []form.FormRole
	err := r.db.
		Preload("User").
		Where("form_id = ?", formID).
		Find(&roles).Error
	return roles, err
}

func (r *DBFormRoleRepo) GetFormRolesByUserID(userID string) ([]form.FormRole, error) {
	var roles []form.FormRole
	err := r.db.
		Where("user_id = ?", userID).
		Find(&roles).Error
	return roles, err
}

func (r *DBFormRoleRepo) HasRole(formID, userID string, role form.Role) (bool, error) {
	var count int64
	err := r.db.Model(&form.FormRole{}).
		Where("form_id = ? AND user_id = ? AND role = ?", formID, userID, role).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DBFormRoleRepo) WithTx(tx *gorm.DB) FormRoleRepo {
	if tx == nil {
		return r
	}
	return &DBFormRoleRepo{
		db: tx,
	}
}
