package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
	"github.com/naratornb/leave-and-shift-project/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for account operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /employees.
//
// @Summary      List the employee roster
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   employeeResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	accounts, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponses(accounts))
}

// Get handles GET /employees/:id.
//
// @Summary      Get a single employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  employeeResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	account, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(account))
}

// Create handles POST /employees.
//
// @Summary      Create an employee account (admin only)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Account details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.CreateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Position: req.Position,
	}
	if req.Contact != nil {
		in.Contact = domain.Contact{Phone: req.Contact.Phone, Address: req.Contact.Address}
	}

	account, err := h.service.Create(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toEmployeeResponse(account))
}

// Update handles PUT /employees/:id. Partial update: absent fields are left
// unchanged. A role field sent by a non-admin is silently ignored.
//
// @Summary      Update an employee account
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Account id"
// @Param        body  body      updateEmployeeRequest  true  "Fields to update"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateEmployeeInput{
		Name:     req.Name,
		Position: req.Position,
		Password: req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		in.Role = &role
	}
	if req.Contact != nil {
		in.Contact = &domain.Contact{Phone: req.Contact.Phone, Address: req.Contact.Address}
	}

	account, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(account))
}

// Activate handles PUT /employees/:id/activate.
//
// @Summary      Activate an employee account
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id}/activate [put]
func (h *EmployeeHandler) Activate(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Activate(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Employee activated"})
}

// Deactivate handles PUT /employees/:id/deactivate. Admin accounts cannot be
// deactivated.
//
// @Summary      Deactivate an employee account
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id}/deactivate [put]
func (h *EmployeeHandler) Deactivate(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Deactivate(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Employee deactivated"})
}

// Delete handles DELETE /employees/:id.
//
// @Summary      Delete an employee account (admin only)
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Employee removed"})
}
