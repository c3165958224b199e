package handlers

import (
	"net/http"

	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for employee-team assignments
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// ListAssignments lists assignments, optionally for one employee
// @Summary List assignments
// @Description List all employee-team assignments, rendered with natural keys.
// @Tags team-employee-relations
// @Produce json
// @Param employee_id query string false "Only this employee's assignments"
// @Success 200 {array} service.AssignmentResponse "Assignments"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /team-employee-relations [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	var employeeID *string
	if id, ok := c.GetQuery("employee_id"); ok {
		employeeID = &id
	}

	assignments, err := h.assignmentService.ListAssignments(employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// CreateAssignment assigns an employee to a team
// @Summary Create assignment
// @Description Assign an employee to a team. employee_type defaults to EMPLOYEE and work_arr to 40.
// @Description A team has at most one LEADER and an employee's weekly hours are capped.
// @Tags team-employee-relations
// @Accept json
// @Produce json
// @Param assignment body service.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Created assignment"
// @Failure 400 {object} ErrorResponse "Missing or invalid field"
// @Failure 404 {object} ErrorResponse "Employee or team not found"
// @Failure 409 {object} ErrorResponse "Duplicate assignment or team already has a leader"
// @Failure 422 {object} ErrorResponse "Weekly hour cap exceeded"
// @Router /team-employee-relations [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// UpdateAssignment changes or re-keys an assignment
// @Summary Update assignment
// @Description Identify the assignment by employee_pk and team_pk. work_arr and employee_type change in place;
// @Description employee_update and team_update move the assignment to another employee or team.
// @Tags team-employee-relations
// @Accept json
// @Produce json
// @Param assignment body service.UpdateAssignmentRequest true "Assignment key and changes"
// @Success 200 {object} service.AssignmentResponse "Updated assignment"
// @Failure 400 {object} ErrorResponse "Missing or invalid field"
// @Failure 404 {object} ErrorResponse "Assignment, employee or team not found"
// @Failure 409 {object} ErrorResponse "Duplicate assignment or team already has a leader"
// @Failure 422 {object} ErrorResponse "Weekly hour cap exceeded"
// @Router /team-employee-relations [put]
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	var req service.UpdateAssignmentRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	assignment, err := h.assignmentService.UpdateAssignment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment removes an assignment
// @Summary Delete assignment
// @Description Identify the assignment by employee_pk and team_pk, in the JSON body or the query string.
// @Tags team-employee-relations
// @Accept json
// @Param employee_pk query string false "Employee external ID"
// @Param team_pk query string false "Team name"
// @Param assignment body service.AssignmentKeyRequest false "Assignment key"
// @Success 204 "Assignment deleted"
// @Failure 400 {object} ErrorResponse "Missing key field"
// @Failure 404 {object} ErrorResponse "Assignment, employee or team not found"
// @Router /team-employee-relations [delete]
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	var req service.AssignmentKeyRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if req.EmployeePK == nil && req.TeamPK == nil {
		if err := c.ShouldBindQuery(&req); err != nil {
			respondError(c, apperrors.NewInvalidFieldError("", err.Error()))
			return
		}
	}

	if err := h.assignmentService.DeleteAssignment(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
