package repository

import (
	"github.com/formlight/formlight/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(u *user.User) error
	SaveUser(u *user.User) error
	GetUserByID(id string) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	GetAllUsers() ([]user.User, error)
	DeleteUser(id string) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) GetUserByID(id string) (user.User, error) {
	var u user.User
	err := r.db.First(&u, "id = ?", id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.First(&u, "email = ?", email).Error
	return u, err
}

func (r *DBUserRepo) GetAllUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) DeleteUser(id string) error {
	return r.db.Delete(&user.User{}, "id = ?", id).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
