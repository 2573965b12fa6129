package dto

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Username     string `json:"username" validate:"required,min=1,max=150"`
	Password     string `json:"password" validate:"required,min=1,max=128"`
	FirstName    string `json:"first_name" validate:"max=150"`
	LastName     string `json:"last_name" validate:"max=150"`
	Birthdate    string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	DepartmentID *int64 `json:"department_id" validate:"omitempty,min=1"`
}

// UpdateEmployeeRequest - запрос на полное или частичное обновление сотрудника.
// Непереданные поля остаются без изменений; пустой пароль не перезаписывает хэш
type UpdateEmployeeRequest struct {
	Username     *string `json:"username" validate:"omitempty,min=1,max=150"`
	Password     *string `json:"password" validate:"omitempty,max=128"`
	FirstName    *string `json:"first_name" validate:"omitempty,max=150"`
	LastName     *string `json:"last_name" validate:"omitempty,max=150"`
	Birthdate    *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	DepartmentID *int64  `json:"department_id" validate:"omitempty,min=1"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsStaff      bool   `json:"is_staff"`
	Birthdate    string `json:"birthdate"`
	DepartmentID *int64 `json:"department_id"`
}

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name               string `json:"name" validate:"required,min=1,max=256"`
	HeadOfDepartmentID *int64 `json:"head_of_department" validate:"omitempty,min=1"`
}

// UpdateDepartmentRequest - запрос на обновление подразделения
type UpdateDepartmentRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=256"`
	HeadOfDepartmentID *int64  `json:"head_of_department" validate:"omitempty,min=1"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	HeadOfDepartmentID *int64 `json:"head_of_department"`
}

// CreateProjectRequest - запрос на создание проекта.
// Даты проекта не принимаются: они производные от дат его задач
type CreateProjectRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=256"`
	ProjectManagerID *int64 `json:"project_manager" validate:"omitempty,min=1"`
}

// UpdateProjectRequest - запрос на обновление проекта
type UpdateProjectRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=256"`
	ProjectManagerID *int64  `json:"project_manager" validate:"omitempty,min=1"`
}

// ProjectResponse - ответ с данными проекта
type ProjectResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	ProjectManagerID *int64  `json:"project_manager"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
}

// CreateTaskRequest - запрос на создание задачи
type CreateTaskRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=256"`
	ProjectID  int64  `json:"project" validate:"required,min=1"`
	ExecutorID *int64 `json:"executor" validate:"omitempty,min=1"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=new started done"`
}

// UpdateTaskRequest - запрос на обновление задачи
type UpdateTaskRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=256"`
	ProjectID  *int64  `json:"project" validate:"omitempty,min=1"`
	ExecutorID *int64  `json:"executor" validate:"omitempty,min=1"`
	StartDate  *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status     *string `json:"status" validate:"omitempty,oneof=new started done"`
}

// TaskResponse - ответ с данными задачи
type TaskResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ProjectID  int64  `json:"project"`
	ExecutorID *int64 `json:"executor"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

// ObtainTokenRequest - запрос на получение пары токенов
type ObtainTokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest - запрос на обновление access-токена
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// VerifyTokenRequest - запрос на проверку токена
type VerifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// TokenPairResponse - пара access/refresh токенов
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AccessTokenResponse - обновлённый access-токен
type AccessTokenResponse struct {
	Access string `json:"access"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
