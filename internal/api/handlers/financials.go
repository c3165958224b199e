package handlers

import (
	"net/http"

	"hr-payroll-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FinancialsHandler handles payroll queries
type FinancialsHandler struct {
	financialsService service.FinancialsServiceInterface
}

// NewFinancialsHandler creates a new financials handler
func NewFinancialsHandler(financialsService service.FinancialsServiceInterface) *FinancialsHandler {
	return &FinancialsHandler{
		financialsService: financialsService,
	}
}

// GetFinancials answers a payroll query
// @Summary Payroll query
// @Description employee_id and team: pay for that single assignment.
// @Description employee_id only: the employee's pay split into employee and leader subtotals.
// @Description team only: the team's total compensation.
// @Description neither: the whole company's compensation.
// @Tags financials
// @Produce json
// @Param employee_id query string false "Employee external ID"
// @Param team query string false "Team name"
// @Success 200 {object} service.AssignmentPayResponse "Single assignment pay"
// @Success 200 {object} service.EmployeePayResponse "Employee pay"
// @Success 200 {object} service.TeamCompensationResponse "Team compensation"
// @Success 200 {object} service.CompanyCompensationResponse "Company compensation"
// @Failure 404 {object} ErrorResponse "Employee, team or assignment not found"
// @Router /financials [get]
func (h *FinancialsHandler) GetFinancials(c *gin.Context) {
	employeeID, byEmployee := c.GetQuery("employee_id")
	team, byTeam := c.GetQuery("team")

	var (
		result interface{}
		err    error
	)
	switch {
	case byEmployee && byTeam:
		result, err = h.financialsService.AssignmentPay(employeeID, team)
	case byEmployee:
		result, err = h.financialsService.EmployeePay(employeeID)
	case byTeam:
		result, err = h.financialsService.TeamCompensation(team)
	default:
		result, err = h.financialsService.CompanyCompensation()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
