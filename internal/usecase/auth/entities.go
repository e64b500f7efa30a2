package auth

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type UserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
