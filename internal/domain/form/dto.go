package form

type QuestionOptionDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Order *int   `json:"order"`
}

type QuestionDTO struct {
	ID          string              `json:"id"`
	Title       string              `json:"title" binding:"required"`
	Placeholder *string             `json:"placeholder"`
	IsRequired  bool                `json:"isRequired"`
	Type        string              `json:"type" binding:"required"`
	Order       *int                `json:"order"`
	Options     []QuestionOptionDTO `json:"options"`
}

type CreateFormRequestDTO struct {
	Title       string        `json:"title" binding:"required"`
	Description *string       `json:"description"`
	Questions   []QuestionDTO `json:"questions" binding:"required"`
}

type AddPermissionDTO struct {
	Email string `json:"email" binding:"required,email"`
	Role  Role   `json:"role" binding:"required,oneof=owner editor"`
}

type RemovePermissionDTO struct {
	Email string `json:"email" binding:"required,email"`
}

// RoleInfo is one grant annotated with the grantee, as returned by
// create and list operations.
type RoleInfo struct {
	Role Role   `json:"role"`
	User string `json:"userId"`
	Name string `json:"name"`
}

// ListItem is one row of the per-user form listing.
type ListItem struct {
	Form            Form       `json:"form"`
	Roles           []RoleInfo `json:"roles,omitempty"`
	SubmissionCount int64      `json:"submissionCount"`
	RoleCount       int64      `json:"roleCount"`
}

// BasicInfo is the public shape served by the slug lookup.
type BasicInfo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description"`
	Questions   []Question `json:"questions"`
}
