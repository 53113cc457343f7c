package service

import (
	"context"
	"time"

	"gallery-server/internal/config"
	"gallery-server/internal/model"
	moduledto "gallery-server/internal/modules/auth/dto"
	userdto "gallery-server/internal/modules/user/dto"
	platformservice "gallery-server/internal/platform/service"
	"gallery-server/internal/utils"
)

type UserService interface {
	CreateUser(ctx context.Context, input userdto.CreateUserInput) (*userdto.UserProfileResponse, error)
	Authenticate(ctx context.Context, email string, password string) (*model.User, error)
}

type Service struct {
	userService UserService
}

func New(userService UserService) *Service {
	return &Service{userService: userService}
}

func (s *Service) Register(ctx context.Context, req moduledto.RegisterRequest) (*userdto.UserProfileResponse, error) {
	return s.userService.CreateUser(ctx, userdto.CreateUserInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  req.Password,
	})
}

// Login 校验凭据并签发登录令牌。
func (s *Service) Login(ctx context.Context, req moduledto.LoginRequest) (*moduledto.LoginResponse, error) {
	user, err := s.userService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	hours := config.Get().JWT.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	token, err := utils.GenerateLoginToken(user.ID, user.Email, time.Hour*time.Duration(hours))
	if err != nil {
		return nil, platformservice.NewInternalError("登录失败，请稍后重试")
	}
	return &moduledto.LoginResponse{AccessToken: token, Message: "登录成功"}, nil
}
