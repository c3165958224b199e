package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hr-payroll-backend/internal/database/models"
	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	store     repository.StoreInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(store repository.StoreInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		store:     store,
		validator: validator,
	}
}

// TeamRequest carries the team name for create and rename
type TeamRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=20" example:"Team1"`
}

// TeamResponse represents the response data for a team
type TeamResponse struct {
	Name string `json:"name"`
}

// CreateTeam creates a new team
func (s *TeamService) CreateTeam(ctx context.Context, req *TeamRequest) (resp *TeamResponse, err error) {
	start := time.Now()
	defer func() {
		recordWrite(ctx, "team", "create", start, err, map[string]interface{}{"team": stringOrEmpty(req.Name)})
	}()

	if err := required(req.Name, "name"); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	team := &models.Team{Name: *req.Name}
	err = s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		return tx.Teams().Create(team)
	})
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return &TeamResponse{Name: team.Name}, nil
}

// GetTeam retrieves a team by name
func (s *TeamService) GetTeam(name string) (*TeamResponse, error) {
	team, err := NewLookup(s.store).ResolveTeam(name)
	if err != nil {
		return nil, err
	}
	return &TeamResponse{Name: team.Name}, nil
}

// ListTeams retrieves all teams
func (s *TeamService) ListTeams() ([]TeamResponse, error) {
	teams, err := s.store.Teams().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = TeamResponse{Name: team.Name}
	}
	return responses, nil
}

// RenameTeam renames the team identified by name
func (s *TeamService) RenameTeam(ctx context.Context, name string, req *TeamRequest) (resp *TeamResponse, err error) {
	start := time.Now()
	defer func() {
		recordWrite(ctx, "team", "update", start, err, map[string]interface{}{"team": name})
	}()

	if err := required(req.Name, "name"); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		team, err := NewLockingLookup(tx).ResolveTeam(name)
		if err != nil {
			return err
		}

		if *req.Name != team.Name {
			taken, err := tx.Teams().GetByName(*req.Name)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check team name: %w", err)
			}
			if taken != nil {
				return apperrors.ErrTeamExists
			}
		}

		team.Name = *req.Name
		if err := tx.Teams().Update(team); err != nil {
			return err
		}
		resp = &TeamResponse{Name: team.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteTeam deletes a team and, by cascade, its assignments
func (s *TeamService) DeleteTeam(ctx context.Context, name string) (err error) {
	start := time.Now()
	defer func() {
		recordWrite(ctx, "team", "delete", start, err, map[string]interface{}{"team": name})
	}()

	return s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		team, err := NewLockingLookup(tx).ResolveTeam(name)
		if err != nil {
			return err
		}
		if err := tx.Teams().Delete(team.ID); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
}
