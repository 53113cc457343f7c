package dto

type RegisterRequest struct {
	Firstname string `json:"firstname" binding:"max=100"`
	Lastname  string `json:"lastname" binding:"max=100"`
	Email     string `json:"email" binding:"required,max=255"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}
