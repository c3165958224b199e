package models

// Team is a named group of employees. Name is the external natural key.
type Team struct {
	BaseModel
	Name string `json:"name" gorm:"size:20;not null;uniqueIndex:idx_teams_name" validate:"required,min=1,max=20"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
