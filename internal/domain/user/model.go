package user

import (
	"time"

	"github.com/formlight/formlight/pkg/oid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:24" json:"id"`
	Email     string    `gorm:"size:100;not null;unique" json:"email"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	LastName  *string   `gorm:"size:50" json:"lastName"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = oid.New()
	}
	return nil
}
