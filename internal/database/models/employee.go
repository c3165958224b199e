package models

import "fmt"

// Employee is a person on the payroll. Code is the external natural key,
// stored and serialized as employee_id.
type Employee struct {
	BaseModel
	Name       string  `json:"name" gorm:"size:20;not null" validate:"required,min=1,max=20"`
	HourlyRate float64 `json:"hourly_rate" gorm:"not null" validate:"gte=0"`
	Code       string  `json:"employee_id" gorm:"column:employee_id;size:10;not null;uniqueIndex:idx_employees_employee_id" validate:"required,min=1,max=10"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// DisplayName renders the employee the way HR refers to them in messages
func (e *Employee) DisplayName() string {
	return fmt.Sprintf("%s %s", e.Name, e.Code)
}
