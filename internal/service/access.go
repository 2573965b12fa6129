package service

import (
	"github.com/hr-records-api/internal/domain"
)

// Правила доступа к ресурсу Employee. Владение определяется сравнением
// идентификаторов учётных записей, а не самих объектов

// CanViewEmployee разрешает чтение владельцу записи или staff-аккаунту
func CanViewEmployee(caller domain.Caller, emp *domain.Employee) bool {
	return caller.IsStaff || caller.AccountID == emp.AccountID
}

// CanModifyEmployee разрешает обновление по тому же правилу, что и чтение
func CanModifyEmployee(caller domain.Caller, emp *domain.Employee) bool {
	return CanViewEmployee(caller, emp)
}

// CanDeleteEmployee разрешает удаление только staff-аккаунту и только чужой
// записи: удалить собственную запись сотрудника нельзя
func CanDeleteEmployee(caller domain.Caller, emp *domain.Employee) bool {
	return caller.IsStaff && caller.AccountID != emp.AccountID
}
