package user

type CreateUserDTO struct {
	Email    string  `json:"email" binding:"required,email" example:"user@example.com"`
	Name     string  `json:"name" binding:"required" example:"John"`
	LastName *string `json:"lastName" example:"Doe"`
	Password string  `json:"password" binding:"required,min=8" example:"password123"`
}

type LoginUserDTO struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type UpdatePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required" example:"oldPass123"`
	NewPassword string `json:"new_password" binding:"required,min=8" example:"newPass123"`
}

type SendNewPasswordDTO struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
}
