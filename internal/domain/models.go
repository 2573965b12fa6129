package domain

import (
	"time"
)

// Account представляет учётную запись пользователя
type Account struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"type:varchar(150);not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"type:varchar(128);not null"`
	FirstName    string    `json:"first_name" gorm:"type:varchar(150)"`
	LastName     string    `json:"last_name" gorm:"type:varchar(150)"`
	IsStaff      bool      `json:"is_staff" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Account) TableName() string {
	return "accounts"
}

// Employee представляет сотрудника, связанного с учётной записью один к одному
type Employee struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AccountID    int64     `json:"account_id" gorm:"not null;uniqueIndex"`
	Birthdate    time.Time `json:"birthdate" gorm:"type:date;not null"`
	DepartmentID *int64    `json:"department_id" gorm:"index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	Account    *Account    `json:"-" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Department *Department `json:"-" gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Department представляет подразделение организации
type Department struct {
	ID                 int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name               string    `json:"name" gorm:"type:varchar(256);not null;uniqueIndex"`
	HeadOfDepartmentID *int64    `json:"head_of_department_id" gorm:"index"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`

	HeadOfDepartment *Employee `json:"-" gorm:"foreignKey:HeadOfDepartmentID;constraint:OnDelete:SET NULL"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Project представляет проект. StartDate и EndDate - производные поля:
// всегда равны min(start_date) и max(end_date) по задачам проекта
type Project struct {
	ID               int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string     `json:"name" gorm:"type:varchar(256);not null;uniqueIndex"`
	ProjectManagerID *int64     `json:"project_manager_id" gorm:"index"`
	StartDate        *time.Time `json:"start_date" gorm:"type:date"`
	EndDate          *time.Time `json:"end_date" gorm:"type:date"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`

	ProjectManager *Employee `json:"-" gorm:"foreignKey:ProjectManagerID;constraint:OnDelete:SET NULL"`
}

// TableName задаёт имя таблицы для GORM
func (Project) TableName() string {
	return "projects"
}

// TaskStatus - статус задачи
type TaskStatus string

const (
	TaskStatusNew     TaskStatus = "new"
	TaskStatusStarted TaskStatus = "started"
	TaskStatusDone    TaskStatus = "done"
)

// Task представляет задачу проекта
type Task struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string     `json:"name" gorm:"type:varchar(256);not null"`
	ProjectID  int64      `json:"project_id" gorm:"not null;index"`
	ExecutorID *int64     `json:"executor_id" gorm:"index"`
	StartDate  time.Time  `json:"start_date" gorm:"type:date;not null"`
	EndDate    time.Time  `json:"end_date" gorm:"type:date;not null"`
	Status     TaskStatus `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`

	Project  *Project  `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Executor *Employee `json:"-" gorm:"foreignKey:ExecutorID;constraint:OnDelete:SET NULL"`
}

// TableName задаёт имя таблицы для GORM
func (Task) TableName() string {
	return "tasks"
}

// Caller - идентичность вызывающего, извлечённая из токена.
// Передаётся явным параметром во все операции сервисов
type Caller struct {
	AccountID int64
	Username  string
	IsStaff   bool
}
