package service_test

import (
	"testing"

	"github.com/hr-records-api/internal/domain"
	"github.com/hr-records-api/internal/service"
)

func TestEmployeeAccessRules(t *testing.T) {
	owner := domain.Caller{AccountID: 1}
	staff := domain.Caller{AccountID: 2, IsStaff: true}
	staffOwner := domain.Caller{AccountID: 1, IsStaff: true}
	stranger := domain.Caller{AccountID: 3}

	emp := &domain.Employee{ID: 10, AccountID: 1}

	tests := []struct {
		name       string
		caller     domain.Caller
		canView    bool
		canModify  bool
		canDelete  bool
	}{
		{"owner", owner, true, true, false},
		{"staff", staff, true, true, true},
		{"staff owner", staffOwner, true, true, false},
		{"stranger", stranger, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.CanViewEmployee(tt.caller, emp); got != tt.canView {
				t.Errorf("CanViewEmployee = %v, want %v", got, tt.canView)
			}
			if got := service.CanModifyEmployee(tt.caller, emp); got != tt.canModify {
				t.Errorf("CanModifyEmployee = %v, want %v", got, tt.canModify)
			}
			if got := service.CanDeleteEmployee(tt.caller, emp); got != tt.canDelete {
				t.Errorf("CanDeleteEmployee = %v, want %v", got, tt.canDelete)
			}
		})
	}
}
