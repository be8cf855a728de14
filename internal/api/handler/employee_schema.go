package handler

import (
	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
)

// errorResponse documents the standard error envelope in swagger output; the
// actual rendering happens in the central error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type contactRequest struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type createEmployeeRequest struct {
	Name     string          `json:"name"     validate:"required"`
	Email    string          `json:"email"    validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     string          `json:"role"     validate:"omitempty,oneof=employee manager admin"`
	Position string          `json:"position"`
	Contact  *contactRequest `json:"contact"`
}

// updateEmployeeRequest uses pointers so an absent field is distinguishable
// from a present-but-empty one. The service treats empty strings as "no
// change" for name and position, matching the historical contract.
type updateEmployeeRequest struct {
	Name     *string         `json:"name"`
	Position *string         `json:"position"`
	Contact  *contactRequest `json:"contact"`
	Role     *string         `json:"role"     validate:"omitempty,oneof=employee manager admin"`
	Password *string         `json:"password"`
}

type contactResponse struct {
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// employeeResponse is the output projection for accounts. It exposes exactly
// id, name, email, role, position, and contact; the credential never appears
// in any response.
type employeeResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     string          `json:"role"`
	Position string          `json:"position,omitempty"`
	Contact  contactResponse `json:"contact"`
}

func toEmployeeResponse(a *domain.Account) employeeResponse {
	return employeeResponse{
		ID:       a.ID,
		Name:     a.Name,
		Email:    a.Email,
		Role:     string(a.Role),
		Position: a.Position,
		Contact:  contactResponse{Phone: a.Contact.Phone, Address: a.Contact.Address},
	}
}

func toEmployeeResponses(accounts []*domain.Account) []employeeResponse {
	out := make([]employeeResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toEmployeeResponse(a))
	}
	return out
}
