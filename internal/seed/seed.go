// Package seed loads a roster of employees, teams and assignments from YAML
// through the service layer, so seed data obeys the same rules as API writes.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/logger"
	"hr-payroll-backend/internal/service"

	"gopkg.in/yaml.v3"
)

// EmployeeData is one employee entry of a roster file
type EmployeeData struct {
	EmployeeID string  `yaml:"employee_id" json:"employee_id"`
	Name       string  `yaml:"name" json:"name"`
	HourlyRate float64 `yaml:"hourly_rate" json:"hourly_rate"`
}

// TeamData is one team entry of a roster file
type TeamData struct {
	Name string `yaml:"name" json:"name"`
}

// AssignmentData is one assignment entry. Absent employee_type and work_arr
// take the service defaults.
type AssignmentData struct {
	Employee     string  `yaml:"employee" json:"employee"`
	Team         string  `yaml:"team" json:"team"`
	EmployeeType *string `yaml:"employee_type,omitempty" json:"employee_type,omitempty"`
	WorkArr      *int    `yaml:"work_arr,omitempty" json:"work_arr,omitempty"`
}

// Roster is the content of a roster file
type Roster struct {
	Employees   []EmployeeData   `yaml:"employees"`
	Teams       []TeamData       `yaml:"teams"`
	Assignments []AssignmentData `yaml:"assignments"`
}

// Count tallies the entries of one kind
type Count struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// Summary reports what a load did
type Summary struct {
	Employees   Count `json:"employees"`
	Teams       Count `json:"teams"`
	Assignments Count `json:"assignments"`
}

// Parse decodes a roster, rejecting unknown keys. An empty document is an
// empty roster.
func Parse(r io.Reader) (*Roster, error) {
	var roster Roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&roster); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	return &roster, nil
}

// ParseFile reads and decodes the roster at path
func ParseFile(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Loader writes a roster through the services
type Loader struct {
	services *service.Services
	log      *logger.Logger
}

// NewLoader creates a loader over services
func NewLoader(services *service.Services) *Loader {
	return &Loader{
		services: services,
		log:      logger.New().WithField("component", "seed"),
	}
}

// Load creates employees, then teams, then assignments. Records that already
// exist are skipped, so a roster can be loaded more than once. Any other
// rejection stops the load.
func (l *Loader) Load(ctx context.Context, roster *Roster) (*Summary, error) {
	summary := &Summary{}

	for _, e := range roster.Employees {
		_, err := l.services.Employees.CreateEmployee(ctx, &service.CreateEmployeeRequest{
			Name:       &e.Name,
			HourlyRate: &e.HourlyRate,
			EmployeeID: &e.EmployeeID,
		})
		if err := tally(&summary.Employees, err); err != nil {
			return summary, fmt.Errorf("failed to create employee %s: %w", e.EmployeeID, err)
		}
	}

	for _, t := range roster.Teams {
		_, err := l.services.Teams.CreateTeam(ctx, &service.TeamRequest{Name: &t.Name})
		if err := tally(&summary.Teams, err); err != nil {
			return summary, fmt.Errorf("failed to create team %s: %w", t.Name, err)
		}
	}

	for _, a := range roster.Assignments {
		_, err := l.services.Assignments.CreateAssignment(ctx, &service.CreateAssignmentRequest{
			Employee:     &a.Employee,
			Team:         &a.Team,
			EmployeeType: a.EmployeeType,
			WorkArr:      a.WorkArr,
		})
		if err := tally(&summary.Assignments, err); err != nil {
			return summary, fmt.Errorf("failed to assign %s to %s: %w", a.Employee, a.Team, err)
		}
	}

	l.log.WithFields(map[string]interface{}{
		"employees":   summary.Employees.Created,
		"teams":       summary.Teams.Created,
		"assignments": summary.Assignments.Created,
	}).Info("roster loaded")

	return summary, nil
}

func tally(c *Count, err error) error {
	switch {
	case err == nil:
		c.Created++
	case apperrors.IsAlreadyExists(err):
		c.Skipped++
	default:
		return err
	}
	c.Total++
	return nil
}
