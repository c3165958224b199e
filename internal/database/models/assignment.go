package models

import (
	"github.com/google/uuid"
)

const (
	// DefaultWeeklyHours is used when an assignment request omits work_arr
	DefaultWeeklyHours = 40
)

// Assignment links one employee to one team with a role and a weekly-hour
// allocation. The pair (employee, team) is unique, and on Postgres a partial
// unique index on team_id restricted to LEADER rows keeps one leader per team.
type Assignment struct {
	BaseModel
	EmployeeID  uuid.UUID `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_employee_team,priority:1;index"`
	TeamID      uuid.UUID `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_employee_team,priority:2;index"`
	Role        Role      `json:"employee_type" gorm:"type:varchar(20);not null;default:'EMPLOYEE'"`
	WeeklyHours int       `json:"work_arr" gorm:"not null;default:40;check:chk_assignments_weekly_hours,weekly_hours >= 0"`

	// Relationships
	Employee Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Team     Team     `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
