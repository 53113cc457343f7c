package service

import (
	"context"
	"strings"

	"gallery-server/internal/model"
	moduledto "gallery-server/internal/modules/user/dto"
	platformservice "gallery-server/internal/platform/service"
	"gallery-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

func toProfile(user *model.User) *moduledto.UserProfileResponse {
	return &moduledto.UserProfileResponse{
		ID:        user.ID,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if ok, msg := utils.ValidateEmail(email); !ok {
		return "", platformservice.NewValidationError(msg)
	}
	return email, nil
}

func hashPassword(password string) (string, error) {
	if ok, msg := utils.ValidatePassword(password); !ok {
		return "", platformservice.NewValidationError(msg)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", platformservice.NewInternalError("密码加密失败")
	}
	return string(hashed), nil
}

// CreateUser 校验并创建用户，邮箱已存在时返回 conflict。
func (s *Service) CreateUser(ctx context.Context, input moduledto.CreateUserInput) (*moduledto.UserProfileResponse, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Firstname: strings.TrimSpace(input.Firstname),
		Lastname:  strings.TrimSpace(input.Lastname),
		Email:     email,
		Password:  hashed,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		err = platformservice.FromRepositoryError(err, "")
		if platformservice.HasCode(err, platformservice.ErrorCodeConflict) {
			return nil, platformservice.NewConflictError("该邮箱已被注册")
		}
		return nil, err
	}
	return toProfile(user), nil
}

// Authenticate 校验邮箱与密码。用户不存在与密码错误返回同一错误。
func (s *Service) Authenticate(ctx context.Context, email string, password string) (*model.User, error) {
	user, err := s.userStore.FindByEmail(ctx, email)
	if err != nil {
		err = platformservice.FromRepositoryError(err, "")
		if platformservice.HasCode(err, platformservice.ErrorCodeNotFound) {
			return nil, platformservice.NewUnauthorizedError("邮箱或密码错误")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, platformservice.NewUnauthorizedError("邮箱或密码错误")
	}
	return user, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uint) (*moduledto.UserProfileResponse, error) {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, platformservice.FromRepositoryError(err, "用户不存在")
	}
	return toProfile(user), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uint, req moduledto.UpdateProfileRequest) (*moduledto.UserProfileResponse, error) {
	updates := make(map[string]interface{})
	if req.Firstname != nil {
		updates["firstname"] = strings.TrimSpace(*req.Firstname)
	}
	if req.Lastname != nil {
		updates["lastname"] = strings.TrimSpace(*req.Lastname)
	}
	if req.Email != nil {
		email, err := normalizeEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		updates["email"] = email
	}
	if req.Password != nil {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}
	if len(updates) == 0 {
		return nil, platformservice.NewValidationError("没有需要更新的字段")
	}

	if err := s.userStore.UpdateByID(ctx, userID, updates); err != nil {
		err = platformservice.FromRepositoryError(err, "用户不存在")
		if platformservice.HasCode(err, platformservice.ErrorCodeConflict) {
			return nil, platformservice.NewConflictError("该邮箱已被使用")
		}
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
