package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/naratornb/leave-and-shift-project/internal/core/ports"
)

// ShiftHandler handles HTTP requests for shift operations.
type ShiftHandler struct {
	service ports.ShiftService
}

func NewShiftHandler(service ports.ShiftService) *ShiftHandler {
	return &ShiftHandler{service: service}
}

// List handles GET /shifts. Optional query parameters: location, from, to
// (dates, YYYY-MM-DD).
//
// @Summary      List shifts
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        location  query     string  false  "Exact location match"
// @Param        from      query     string  false  "Earliest date (YYYY-MM-DD)"
// @Param        to        query     string  false  "Latest date (YYYY-MM-DD)"
// @Success      200       {array}   shiftResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Router       /shifts [get]
func (h *ShiftHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	filter := ports.ListShiftsFilter{Location: c.QueryParam("location")}
	if from := c.QueryParam("from"); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "from must be a date (YYYY-MM-DD)")
		}
		filter.DateFrom = t
	}
	if to := c.QueryParam("to"); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "to must be a date (YYYY-MM-DD)")
		}
		filter.DateTo = t
	}

	shifts, err := h.service.List(c.Request().Context(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShiftResponses(shifts))
}

// Get handles GET /shifts/:id.
//
// @Summary      Get a single shift
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Shift id"
// @Success      200  {object}  shiftResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /shifts/{id} [get]
func (h *ShiftHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	shift, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShiftResponse(shift))
}

// Create handles POST /shifts.
//
// @Summary      Create a shift
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShiftRequest  true  "Shift details"
// @Success      201   {object}  shiftResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /shifts [post]
func (h *ShiftHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createShiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be a date (YYYY-MM-DD)")
	}

	shift, err := h.service.Create(c.Request().Context(), actor, ports.CreateShiftInput{
		Date:          date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		RequiredStaff: req.RequiredStaff,
		Location:      req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toShiftResponse(shift))
}

// Update handles PUT /shifts/:id. Partial update: absent fields keep their
// stored values.
//
// @Summary      Update a shift
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Shift id"
// @Param        body  body      updateShiftRequest  true  "Fields to update"
// @Success      200   {object}  shiftResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /shifts/{id} [put]
func (h *ShiftHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateShiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateShiftInput{
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		RequiredStaff: req.RequiredStaff,
		Location:      req.Location,
	}
	if req.Date != nil && *req.Date != "" {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be a date (YYYY-MM-DD)")
		}
		in.Date = &date
	}

	shift, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShiftResponse(shift))
}

// Delete handles DELETE /shifts/:id. The handler is wired and policy-gated,
// but the route is not registered; see the router.
//
// @Summary      Delete a shift
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Shift id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /shifts/{id} [delete]
func (h *ShiftHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Shift removed"})
}
