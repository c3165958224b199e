package handlers

import (
	"net/http"

	"hr-payroll-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employees
type EmployeeHandler struct {
	employeeService service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// ListEmployees lists all employees or returns the one matching employee_id
// @Summary List employees
// @Description List all employees. With employee_id, return that employee only.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee_id query string false "Employee external ID"
// @Success 200 {array} service.EmployeeResponse "Employees"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	if employeeID, ok := c.GetQuery("employee_id"); ok {
		employee, err := h.employeeService.GetEmployee(employeeID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, employee)
		return
	}

	employees, err := h.employeeService.ListEmployees()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// CreateEmployee creates a new employee
// @Summary Create employee
// @Description Create an employee. All fields are required; employee_id must be unique.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} service.EmployeeResponse "Created employee"
// @Failure 400 {object} ErrorResponse "Missing or invalid field"
// @Failure 409 {object} ErrorResponse "employee_id already in use"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee applies a partial update to an employee
// @Summary Update employee
// @Description Change any of name, hourly_rate and employee_id. Absent fields are left unchanged.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee_id path string true "Employee external ID"
// @Param employee body service.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} service.EmployeeResponse "Updated employee"
// @Failure 400 {object} ErrorResponse "Invalid field"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "employee_id already in use"
// @Router /employees/{employee_id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req service.UpdateEmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("employee_id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee deletes an employee and its assignments
// @Summary Delete employee
// @Description Delete an employee. All of the employee's assignments are removed with it.
// @Tags employees
// @Param employee_id path string true "Employee external ID"
// @Success 204 "Employee deleted"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees/{employee_id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Param("employee_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
