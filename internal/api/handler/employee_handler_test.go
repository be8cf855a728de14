package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
	"github.com/naratornb/leave-and-shift-project/internal/core/ports"
)

type stubEmployeeService struct {
	createFn     func(ctx context.Context, actor ports.Actor, in ports.CreateEmployeeInput) (*domain.Account, error)
	getFn        func(ctx context.Context, actor ports.Actor, id string) (*domain.Account, error)
	listFn       func(ctx context.Context, actor ports.Actor) ([]*domain.Account, error)
	updateFn     func(ctx context.Context, actor ports.Actor, id string, in ports.UpdateEmployeeInput) (*domain.Account, error)
	changeRoleFn func(ctx context.Context, actor ports.Actor, id string, role domain.Role) (*domain.Account, error)
	activateFn   func(ctx context.Context, actor ports.Actor, id string) (*domain.Account, error)
	deactivateFn func(ctx context.Context, actor ports.Actor, id string) (*domain.Account, error)
	deleteFn     func(ctx context.Context, actor ports.Actor, id string) error
}

func (s *stubEmployeeService) Create(ctx context.Context, actor ports.Actor, in ports.CreateEmployeeInput) (*domain.Account, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubEmployeeService) Get(ctx context.Context, actor ports.Actor, id string) (*domain.Account, error) {
	return s.getFn(ctx, actor, id)
}

func (s *stubEmployeeService) List(ctx context.Context, actor ports.Actor) ([]*domain.Account, error) {
	return s.listFn(ctx, actor)
}

func (s *stubEmployeeService) Update(ctx context.Context, actor ports.Actor, id string, in ports.UpdateEmployeeInput) (*domain.Account, error) {
	return s.updateFn(ctx, actor, id, in)
}

func (s *stubEmployeeService) ChangeRole(ctx context.Context, actor ports.Actor, id string, role domain.Role) (*domain.Account, error) {
	return s.changeRoleFn(ctx, actor, id, role)
}

func (s *stubEmployeeService) Activate(ctx context.Context, actor ports.Actor, id string) (*domain.Account, error) {
	return s.activateFn(ctx, actor, id)
}

func (s *stubEmployeeService) Deactivate(ctx context.Context, actor ports.Actor, id string) (*domain.Account, error) {
	return s.deactivateFn(ctx, actor, id)
}

func (s *stubEmployeeService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	return s.deleteFn(ctx, actor, id)
}

// authedContext builds an echo context carrying the claims the Auth
// middleware would have injected.
func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, id string, role domain.Role) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("account_id", id)
	c.Set("role", string(role))
	return c
}

func TestEmployeeHandler_List_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		listFn: func(ctx context.Context, actor ports.Actor) ([]*domain.Account, error) {
			if actor.ID != "mgr_1" || actor.Role != domain.RoleManager {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			return []*domain.Account{
				{ID: "acc_1", Name: "Alice", Role: domain.RoleEmployee, PasswordHash: "hash"},
				{ID: "acc_2", Name: "Bob", Role: domain.RoleManager, PasswordHash: "hash"},
			}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "mgr_1", domain.RoleManager)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp))
	}
	for _, entry := range resp {
		if _, leaked := entry["password"]; leaked {
			t.Fatal("password must never appear in a listing")
		}
		if strings.Contains(rec.Body.String(), "hash") {
			t.Fatal("password hash leaked into the response body")
		}
	}
}

func TestEmployeeHandler_MissingClaims(t *testing.T) {
	// Without the Auth middleware there is no actor; every handler must
	// refuse with 401 before calling the service.
	e := newTestEcho()
	stub := &stubEmployeeService{}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if code := httpCode(t, handler.List(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestEmployeeHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, actor ports.Actor, in ports.CreateEmployeeInput) (*domain.Account, error) {
			if in.Role != domain.RoleManager {
				t.Fatalf("expected manager role in input, got %s", in.Role)
			}
			if in.Contact.Phone != "555-0101" {
				t.Fatalf("contact not mapped: %+v", in.Contact)
			}
			return &domain.Account{ID: "acc_9", Name: in.Name, Email: in.Email, Role: in.Role}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	body := strings.NewReader(`{"name":"Carol","email":"carol@example.com","password":"secret123","role":"manager","contact":{"phone":"555-0101"}}`)
	req := httptest.NewRequest(http.MethodPost, "/employees", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin_1", domain.RoleAdmin)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Create_InvalidRole(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, actor ports.Actor, in ports.CreateEmployeeInput) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	body := strings.NewReader(`{"name":"Eve","email":"eve@example.com","password":"secret123","role":"superuser"}`)
	req := httptest.NewRequest(http.MethodPost, "/employees", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin_1", domain.RoleAdmin)

	if code := httpCode(t, handler.Create(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestEmployeeHandler_Update_MapsPointerFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		updateFn: func(ctx context.Context, actor ports.Actor, id string, in ports.UpdateEmployeeInput) (*domain.Account, error) {
			if id != "acc_1" {
				t.Fatalf("expected id acc_1, got %s", id)
			}
			if in.Name == nil || *in.Name != "Renamed" {
				t.Fatalf("name not mapped: %v", in.Name)
			}
			if in.Position != nil {
				t.Fatalf("absent position must stay nil, got %v", *in.Position)
			}
			if in.Role == nil || *in.Role != domain.RoleManager {
				t.Fatalf("role not mapped: %v", in.Role)
			}
			return &domain.Account{ID: id, Name: *in.Name, Role: domain.RoleEmployee}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	body := strings.NewReader(`{"name":"Renamed","role":"manager"}`)
	req := httptest.NewRequest(http.MethodPut, "/employees/acc_1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "emp_1", domain.RoleEmployee)
	c.SetParamNames("id")
	c.SetParamValues("acc_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Update_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		updateFn: func(ctx context.Context, actor ports.Actor, id string, in ports.UpdateEmployeeInput) (*domain.Account, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewEmployeeHandler(stub)

	body := strings.NewReader(`{"name":"Hijack"}`)
	req := httptest.NewRequest(http.MethodPut, "/employees/acc_2", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "emp_1", domain.RoleEmployee)
	c.SetParamNames("id")
	c.SetParamValues("acc_2")

	err := handler.Update(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestEmployeeHandler_Deactivate_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		deactivateFn: func(ctx context.Context, actor ports.Actor, id string) (*domain.Account, error) {
			if id != "acc_1" {
				t.Fatalf("expected id acc_1, got %s", id)
			}
			return &domain.Account{ID: id, Active: false}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/employees/acc_1/deactivate", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "mgr_1", domain.RoleManager)
	c.SetParamNames("id")
	c.SetParamValues("acc_1")

	if err := handler.Deactivate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Employee deactivated" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestEmployeeHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		deleteFn: func(ctx context.Context, actor ports.Actor, id string) error {
			return domain.ErrAccountNotFound
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/employees/ghost", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin_1", domain.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	err := handler.Delete(c)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound to propagate, got %v", err)
	}
}
