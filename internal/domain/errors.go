package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrInvalidArgument - отсутствует обязательное поле
	ErrInvalidArgument = &DomainError{
		Code:    "INVALID_ARGUMENT",
		Message: "missing required field",
	}

	// ErrTeamFull - команда уже заполнена до Capacity
	ErrTeamFull = &DomainError{
		Code:    "TEAM_FULL",
		Message: "team is full",
	}

	// ErrDuplicateMember - участник с таким email уже в команде
	ErrDuplicateMember = &DomainError{
		Code:    "DUPLICATE_MEMBER",
		Message: "member with this email already in team",
	}

	// ErrMemberNotFound - участник с таким email не найден
	ErrMemberNotFound = &DomainError{
		Code:    "MEMBER_NOT_FOUND",
		Message: "member not found in team",
	}

	// ErrLeaderRemoval - лидера нельзя удалить из команды
	ErrLeaderRemoval = &DomainError{
		Code:    "LEADER_REMOVAL_FORBIDDEN",
		Message: "team leader cannot be removed",
	}

	// ErrNotAMember - запрос от email, которого нет в команде
	ErrNotAMember = &DomainError{
		Code:    "NOT_A_MEMBER",
		Message: "you are not a member of this team",
	}

	// ErrForbidden - доступ к встрече запрещён
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "email not found in team members",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrUnavailable - хранилище недоступно
	ErrUnavailable = &DomainError{
		Code:    "UNAVAILABLE",
		Message: "storage unavailable",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInvalidArgumentError создает ошибку INVALID_ARGUMENT с именем поля
func NewInvalidArgumentError(field string) *DomainError {
	return &DomainError{
		Code:    "INVALID_ARGUMENT",
		Message: fmt.Sprintf("%s is required", field),
	}
}

// NewUnavailableError создает ошибку UNAVAILABLE, сохраняя причину в сообщении
func NewUnavailableError(err error) *DomainError {
	return &DomainError{
		Code:    "UNAVAILABLE",
		Message: fmt.Sprintf("storage unavailable: %v", err),
	}
}
