package models

// Role defines the role an employee holds inside a team
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleLeader   Role = "LEADER"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleLeader:
		return true
	}
	return false
}

// IsLeader reports whether the role carries the leadership premium
func (r Role) IsLeader() bool {
	return r == RoleLeader
}
