package dto

import "time"

type UserProfileResponse struct {
	ID        uint      `json:"id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateProfileRequest struct {
	Firstname *string `json:"firstname" binding:"omitempty,max=100"`
	Lastname  *string `json:"lastname" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,max=255"`
	Password  *string `json:"password"`
}

// CreateUserInput 为注册流程创建用户时的输入，Password 为明文。
type CreateUserInput struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
}
