package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTaskNotFound       = errors.New("task not found")

	ErrUsernameTaken           = errors.New("account with this username already exists")
	ErrUsernameInUse           = errors.New("username is already in use by another account")
	ErrDuplicateDepartmentName = errors.New("department with this name already exists")
	ErrDuplicateProjectName    = errors.New("project with this name already exists")

	ErrInvalidReference = errors.New("referenced object does not exist")

	ErrForbidden          = errors.New("operation is not permitted for this caller")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("token is invalid or expired")
)
