package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hr-records-api/internal/domain"
	"github.com/hr-records-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Циклическая связь employees<->departments не выражается через AutoMigrate
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&domain.Account{},
		&domain.Department{},
		&domain.Employee{},
		&domain.Project{},
		&domain.Task{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func seedAccount(t *testing.T, db *gorm.DB, username string) *domain.Account {
	t.Helper()

	acc := &domain.Account{Username: username, PasswordHash: "x"}
	if err := db.Create(acc).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return acc
}

func seedEmployee(t *testing.T, db *gorm.DB, username string) *domain.Employee {
	t.Helper()

	acc := seedAccount(t, db, username)
	emp := &domain.Employee{AccountID: acc.ID, Birthdate: date("1988-12-12")}
	if err := db.Create(emp).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return emp
}

func TestTaskDateSpan(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewTaskRepository(db)

	project := &domain.Project{Name: "Roll cages"}
	other := &domain.Project{Name: "Logistic"}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	tasks := []*domain.Task{
		{Name: "a", ProjectID: project.ID, StartDate: date("2020-04-30"), EndDate: date("2020-05-31"), Status: domain.TaskStatusNew},
		{Name: "b", ProjectID: project.ID, StartDate: date("2020-03-01"), EndDate: date("2020-04-15"), Status: domain.TaskStatusStarted},
		{Name: "c", ProjectID: other.ID, StartDate: date("2019-01-01"), EndDate: date("2021-01-01"), Status: domain.TaskStatusDone},
	}
	for _, task := range tasks {
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	start, end, err := repo.DateSpan(ctx, project.ID)
	if err != nil {
		t.Fatalf("date span: %v", err)
	}
	if start == nil || !start.Equal(date("2020-03-01")) {
		t.Errorf("start = %v, want 2020-03-01", start)
	}
	if end == nil || !end.Equal(date("2020-05-31")) {
		t.Errorf("end = %v, want 2020-05-31", end)
	}
}

func TestTaskDateSpanEmptyProject(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewTaskRepository(db)

	project := &domain.Project{Name: "Roll cages"}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	start, end, err := repo.DateSpan(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("date span: %v", err)
	}
	if start != nil || end != nil {
		t.Errorf("span = %v/%v, want nil/nil", start, end)
	}
}

func TestTxRunnerRollback(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	tx := repository.NewTxRunner(db)
	repo := repository.NewDepartmentRepository(db)

	boom := errors.New("boom")
	err := tx.InTx(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, &domain.Department{Name: "IT"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	exists, err := repo.ExistsByName(ctx, "IT", nil)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Error("department must be rolled back")
	}
}

func TestTxRunnerCommit(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	tx := repository.NewTxRunner(db)
	repo := repository.NewDepartmentRepository(db)

	err := tx.InTx(ctx, func(ctx context.Context) error {
		return repo.Create(ctx, &domain.Department{Name: "IT"})
	})
	if err != nil {
		t.Fatalf("in tx: %v", err)
	}

	exists, err := repo.ExistsByName(ctx, "IT", nil)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Error("department must be committed")
	}
}

func TestEmployeeClearReferences(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewEmployeeRepository(db)

	emp := seedEmployee(t, db, "head")
	dept := &domain.Department{Name: "IT", HeadOfDepartmentID: &emp.ID}
	project := &domain.Project{Name: "Roll cages", ProjectManagerID: &emp.ID}
	if err := db.Create(dept).Error; err != nil {
		t.Fatalf("seed department: %v", err)
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	task := &domain.Task{
		Name: "a", ProjectID: project.ID, ExecutorID: &emp.ID,
		StartDate: date("2020-04-30"), EndDate: date("2020-05-31"), Status: domain.TaskStatusNew,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}

	if err := repo.ClearReferences(ctx, emp.ID); err != nil {
		t.Fatalf("clear references: %v", err)
	}

	var gotDept domain.Department
	if err := db.First(&gotDept, dept.ID).Error; err != nil {
		t.Fatalf("reload department: %v", err)
	}
	if gotDept.HeadOfDepartmentID != nil {
		t.Error("head_of_department_id must be nulled")
	}

	var gotProject domain.Project
	if err := db.First(&gotProject, project.ID).Error; err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if gotProject.ProjectManagerID != nil {
		t.Error("project_manager_id must be nulled")
	}

	var gotTask domain.Task
	if err := db.First(&gotTask, task.ID).Error; err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if gotTask.ExecutorID != nil {
		t.Error("executor_id must be nulled")
	}
}

func TestEmployeeDetachDepartment(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewEmployeeRepository(db)

	dept := &domain.Department{Name: "IT"}
	if err := db.Create(dept).Error; err != nil {
		t.Fatalf("seed department: %v", err)
	}

	emp := seedEmployee(t, db, "worker")
	if err := db.Model(emp).Update("department_id", dept.ID).Error; err != nil {
		t.Fatalf("attach employee: %v", err)
	}

	if err := repo.DetachDepartment(ctx, dept.ID); err != nil {
		t.Fatalf("detach: %v", err)
	}

	got, err := repo.GetByID(ctx, emp.ID)
	if err != nil {
		t.Fatalf("reload employee: %v", err)
	}
	if got.DepartmentID != nil {
		t.Error("department_id must be nulled")
	}
}

func TestEmployeeGetByIDPreloadsAccount(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewEmployeeRepository(db)

	emp := seedEmployee(t, db, "vololo122")

	got, err := repo.GetByID(context.Background(), emp.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Account == nil || got.Account.Username != "vololo122" {
		t.Errorf("account = %+v, want preloaded vololo122", got.Account)
	}
}

func TestEmployeeGetByIDNotFound(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewEmployeeRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("err = %v, want ErrEmployeeNotFound", err)
	}
}

func TestTaskDeleteByProjectID(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewTaskRepository(db)

	project := &domain.Project{Name: "Roll cages"}
	other := &domain.Project{Name: "Logistic"}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	doomed := &domain.Task{Name: "a", ProjectID: project.ID, StartDate: date("2020-04-30"), EndDate: date("2020-05-31"), Status: domain.TaskStatusNew}
	kept := &domain.Task{Name: "b", ProjectID: other.ID, StartDate: date("2020-04-30"), EndDate: date("2020-05-31"), Status: domain.TaskStatusNew}
	if err := db.Create(doomed).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}
	if err := db.Create(kept).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}

	if err := repo.DeleteByProjectID(ctx, project.ID); err != nil {
		t.Fatalf("delete by project: %v", err)
	}

	if _, err := repo.GetByID(ctx, doomed.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("doomed task err = %v, want ErrTaskNotFound", err)
	}
	if _, err := repo.GetByID(ctx, kept.ID); err != nil {
		t.Errorf("kept task must survive: %v", err)
	}
}

func TestProjectUpdateDateSpan(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewProjectRepository(db)

	project := &domain.Project{Name: "Roll cages"}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	start, end := date("2020-04-30"), date("2020-05-31")
	if err := repo.UpdateDateSpan(ctx, project.ID, &start, &end); err != nil {
		t.Fatalf("update span: %v", err)
	}

	got, err := repo.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.StartDate == nil || !got.StartDate.Equal(start) {
		t.Errorf("start = %v, want %v", got.StartDate, start)
	}
	if got.EndDate == nil || !got.EndDate.Equal(end) {
		t.Errorf("end = %v, want %v", got.EndDate, end)
	}

	// Обратный переход к проекту без задач
	if err := repo.UpdateDateSpan(ctx, project.ID, nil, nil); err != nil {
		t.Fatalf("null span: %v", err)
	}
	got, err = repo.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.StartDate != nil || got.EndDate != nil {
		t.Errorf("span = %v/%v, want nil/nil", got.StartDate, got.EndDate)
	}
}

func TestAccountExistsByUsername(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewAccountRepository(db)

	acc := seedAccount(t, db, "vololo122")

	exists, err := repo.ExistsByUsername(ctx, "vololo122", nil)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Error("expected username to be taken")
	}

	// Собственная запись не считается конфликтом при обновлении
	exists, err = repo.ExistsByUsername(ctx, "vololo122", &acc.ID)
	if err != nil {
		t.Fatalf("exists with exclude: %v", err)
	}
	if exists {
		t.Error("own record must be excluded")
	}

	exists, err = repo.ExistsByUsername(ctx, "ghost", nil)
	if err != nil {
		t.Fatalf("exists unknown: %v", err)
	}
	if exists {
		t.Error("unknown username must be free")
	}
}

func TestAccountDeleteNotFound(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewAccountRepository(db)

	err := repo.Delete(context.Background(), 999)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
}
