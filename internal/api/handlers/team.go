package handlers

import (
	"net/http"

	"hr-payroll-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams lists all teams or returns the one matching name
// @Summary List teams
// @Tags teams
// @Produce json
// @Param name query string false "Team name"
// @Success 200 {array} service.TeamResponse "Teams"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	if name, ok := c.GetQuery("name"); ok {
		team, err := h.teamService.GetTeam(name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, team)
		return
	}

	teams, err := h.teamService.ListTeams()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// CreateTeam creates a new team
// @Summary Create team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.TeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Created team"
// @Failure 400 {object} ErrorResponse "Missing or invalid name"
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.TeamRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// RenameTeam changes a team's name
// @Summary Rename team
// @Tags teams
// @Accept json
// @Produce json
// @Param name path string true "Current team name"
// @Param team body service.TeamRequest true "New name"
// @Success 200 {object} service.TeamResponse "Renamed team"
// @Failure 400 {object} ErrorResponse "Missing or invalid name"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Router /teams/{name} [put]
func (h *TeamHandler) RenameTeam(c *gin.Context) {
	var req service.TeamRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	team, err := h.teamService.RenameTeam(c.Request.Context(), c.Param("name"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam deletes a team and its assignments
// @Summary Delete team
// @Tags teams
// @Param name path string true "Team name"
// @Success 204 "Team deleted"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{name} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.teamService.DeleteTeam(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
