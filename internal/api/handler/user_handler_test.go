package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// stubUserService creates accounts in memory with the default role.
type stubUserService struct {
	registered []ports.RegisterUserInput
}

func (s *stubUserService) Register(_ context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	s.registered = append(s.registered, input)
	return &domain.User{
		ID:        "u1",
		Username:  input.Username,
		Role:      domain.RoleUser,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *stubUserService) List(_ context.Context) ([]*domain.User, error) {
	return []*domain.User{}, nil
}

func (s *stubUserService) Get(_ context.Context, id string, _ domain.Identity) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) Update(_ context.Context, id string, _ ports.UpdateUserInput, _ domain.Identity) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) Delete(_ context.Context, id string, _ domain.Identity) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

// recorderSpy captures enqueued audit events.
type recorderSpy struct {
	events []ports.ActivityInput
}

func (r *recorderSpy) Enqueue(event ports.ActivityInput) {
	r.events = append(r.events, event)
}

func newRegisterContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	svc := &stubUserService{}
	spy := &recorderSpy{}
	h := NewUserHandler(svc, spy)

	c, rec := newRegisterContext(t, `{"username":"alice","password":"Str0ng!pass"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, resp.Role)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}

	if len(spy.events) != 1 || spy.events[0].Action != domain.ActionUserRegistered {
		t.Fatalf("expected one user_registered event, got %+v", spy.events)
	}
}

func TestUserHandler_Register_WeakPassword(t *testing.T) {
	h := NewUserHandler(&stubUserService{}, &recorderSpy{})

	weak := []string{
		`{"username":"alice","password":"short1!"}`,     // too short
		`{"username":"alice","password":"alllower1!"}`,  // no uppercase
		`{"username":"alice","password":"ALLUPPER1!"}`,  // no lowercase
		`{"username":"alice","password":"NoDigits!!aA"}`,
		`{"username":"alice","password":"NoSpecial1aA"}`,
	}
	for _, body := range weak {
		c, _ := newRegisterContext(t, body)
		err := h.Register(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %v", body, err)
		}
	}
}

func TestUserHandler_Register_MissingUsername(t *testing.T) {
	h := NewUserHandler(&stubUserService{}, &recorderSpy{})

	c, _ := newRegisterContext(t, `{"password":"Str0ng!pass"}`)
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
