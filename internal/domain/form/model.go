package form

import (
	"encoding/json"
	"time"

	"github.com/formlight/formlight/internal/domain/user"
	"github.com/formlight/formlight/pkg/oid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question types. Choice-based types carry an options list; the rest
// answer through a single scalar value.
const (
	QuestionShortText = "short-text"
	QuestionLongText  = "long-text"
	QuestionSelect    = "select"
	QuestionRadio     = "radio"
	QuestionCheckbox  = "checkbox"
)

type QuestionOption struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Order *int   `json:"order,omitempty"`
}

type Question struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Placeholder *string          `json:"placeholder,omitempty"`
	IsRequired  bool             `json:"isRequired"`
	Type        string           `json:"type"`
	Order       *int             `json:"order,omitempty"`
	Options     []QuestionOption `json:"options"`
}

// MarshalJSON omits the options field when the list is nil while still
// emitting [] when all options were filtered out. "no options" and
// "empty options" stay distinguishable in the stored document.
func (q Question) MarshalJSON() ([]byte, error) {
	type alias Question
	if q.Options == nil {
		return json.Marshal(struct {
			alias
			Options []QuestionOption `json:"options,omitempty"`
		}{alias: alias(q)})
	}
	return json.Marshal(alias(q))
}

// Form owns its question schema as a single JSON document. Once created,
// that schema is authoritative for every future submission.
type Form struct {
	ID          string                        `gorm:"primaryKey;size:24" json:"id"`
	Title       string                        `gorm:"size:200;not null" json:"title"`
	Slug        string                        `gorm:"size:250;not null;uniqueIndex" json:"slug"`
	Description *string                       `gorm:"type:text" json:"description"`
	Questions   datatypes.JSONSlice[Question] `json:"questions"`
	IsPublished bool                          `gorm:"not null;default:false" json:"isPublished"`
	AuthorID    string                        `gorm:"size:24;not null;index" json:"authorId"`
	Author      *user.User                    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Roles       []FormRole                    `gorm:"foreignKey:FormID" json:"formsRoles,omitempty"`
	CreatedAt   time.Time                     `json:"createdAt"`
	UpdatedAt   time.Time                     `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt                `gorm:"index" json:"-"`
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = oid.New()
	}
	return nil
}

type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
)

// FormRole grants one user one role on one form. The composite primary
// key keeps the at-most-one-grant-per-pair invariant in the database.
type FormRole struct {
	FormID    string     `gorm:"primaryKey;size:24" json:"formId"`
	UserID    string     `gorm:"primaryKey;size:24" json:"userId"`
	Role      Role       `gorm:"size:20;not null" json:"role"`
	User      *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (FormRole) TableName() string {
	return "form_roles"
}
