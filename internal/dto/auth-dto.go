package dto

type SignupDTO struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,custom_email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupResponseDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type LoginResponseDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}
