package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type ErrorCode string

const (
	ErrorCodeValidation          ErrorCode = "validation"
	ErrorCodeUnauthorized        ErrorCode = "unauthorized"
	ErrorCodeForbidden           ErrorCode = "forbidden"
	ErrorCodeConflict            ErrorCode = "conflict"
	ErrorCodeNotFound            ErrorCode = "not_found"
	ErrorCodeInvalidOperation    ErrorCode = "invalid_operation"
	ErrorCodeIOFailure           ErrorCode = "io_failure"
	ErrorCodeUploadFailure       ErrorCode = "upload_failure"
	ErrorCodeConstraintViolation ErrorCode = "constraint_violation"
	ErrorCodeInternal            ErrorCode = "internal"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
	// Details 会随错误响应一起输出，例如上传失败的文件数量。
	Details map[string]interface{}
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

func NewUnauthorizedError(message string) error {
	return NewServiceError(ErrorCodeUnauthorized, message)
}

func NewForbiddenError(message string) error {
	return NewServiceError(ErrorCodeForbidden, message)
}

func NewConflictError(message string) error {
	return NewServiceError(ErrorCodeConflict, message)
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

func NewInvalidOperationError(message string) error {
	return NewServiceError(ErrorCodeInvalidOperation, message)
}

func NewIOFailureError(message string, cause error) error {
	return &ServiceError{Code: ErrorCodeIOFailure, Message: message, Cause: cause}
}

// NewUploadFailureError 表示批量上传失败，补偿清理已在返回前完成。
func NewUploadFailureError(failed, total int, file string, cause error) error {
	return &ServiceError{
		Code:    ErrorCodeUploadFailure,
		Message: "上传失败，已清理本次写入的文件",
		Details: map[string]interface{}{
			"failed": failed,
			"total":  total,
			"file":   file,
		},
		Cause: cause,
	}
}

func NewConstraintViolationError(message string, cause error) error {
	return &ServiceError{Code: ErrorCodeConstraintViolation, Message: message, Cause: cause}
}

func NewInternalError(message string) error {
	return NewServiceError(ErrorCodeInternal, message)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// FromRepositoryError 将仓储层错误归类为服务层错误。已是 ServiceError 的原样返回。
func FromRepositoryError(err error, notFoundMessage string) error {
	if err == nil {
		return nil
	}
	if _, ok := AsServiceError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewNotFoundError(notFoundMessage)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ServiceError{Code: ErrorCodeConflict, Message: "记录已存在", Cause: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return NewConstraintViolationError("外键约束校验失败", err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated), isCheckViolation(err):
		return NewConstraintViolationError("数据完整性约束校验失败", err)
	}
	return &ServiceError{Code: ErrorCodeInternal, Message: "数据库操作失败", Cause: err}
}

// isCheckViolation 兼容未翻译 CHECK 约束错误的驱动。
func isCheckViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "check constraint")
}

// HasCode 判断 err 是否为指定错误码的 ServiceError。
func HasCode(err error, code ErrorCode) bool {
	serviceErr, ok := AsServiceError(err)
	return ok && serviceErr.Code == code
}
