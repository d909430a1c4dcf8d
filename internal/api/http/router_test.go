package http

import (
	"encoding/json"
	"fmt"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/badobtech/backoffice-service/internal/api/http/handlers"
	"github.com/badobtech/backoffice-service/internal/auth"
	"github.com/badobtech/backoffice-service/internal/config"
	"github.com/badobtech/backoffice-service/internal/domain"
	"github.com/badobtech/backoffice-service/internal/events"
	"github.com/badobtech/backoffice-service/internal/observability"
	"github.com/badobtech/backoffice-service/internal/service"
)

type testServer struct {
	app       *fiber.App
	tokens    *auth.TokenManager
	employees *memEmployeeRepo
	accounts  *memAccountRepo
	calls     *memCallRepo
	hours     *memHourLogRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:               "test-secret",
		AccessTokenTTLMinutes:   60,
		PasswordResetTTLMinutes: 30,
		BcryptCost:              bcrypt.MinCost,
	}}

	employees := newMemEmployeeRepo()
	accounts := newMemAccountRepo()
	calls := newMemCallRepo()
	hours := newMemHourLogRepo()
	dispatcher := events.NewInMemoryDispatcher()

	authSvc := service.NewAuthService(cfg, service.AuthDependencies{
		EmployeeRepo:      employees,
		PasswordResetRepo: newMemResetRepo(),
	})
	employeeSvc := service.NewEmployeeService(service.EmployeeDependencies{
		EmployeeRepo: employees,
		BcryptCost:   bcrypt.MinCost,
		Dispatcher:   dispatcher,
	})
	accountSvc := service.NewAccountService(service.AccountDependencies{
		AccountRepo: accounts,
		CallRepo:    calls,
		Dispatcher:  dispatcher,
	})
	callSvc := service.NewCallService(service.CallDependencies{
		CallRepo:    calls,
		AccountRepo: accounts,
		Dispatcher:  dispatcher,
	})
	hourSvc := service.NewHourLogService(service.HourLogDependencies{
		HourLogRepo:  hours,
		EmployeeRepo: employees,
		Dispatcher:   dispatcher,
	})

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("backoffice-service", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authSvc),
		Employees:      handlers.NewEmployeesHandler(employeeSvc),
		Accounts:       handlers.NewAccountsHandler(accountSvc),
		Calls:          handlers.NewCallsHandler(callSvc),
		Hours:          handlers.NewHoursHandler(hourSvc),
		AuthMiddleware: auth.NewAuthMiddleware(authSvc.TokenManager()),
	})

	return &testServer{
		app:       app,
		tokens:    authSvc.TokenManager(),
		employees: employees,
		accounts:  accounts,
		calls:     calls,
		hours:     hours,
	}
}

func (s *testServer) seedEmployee(t *testing.T, email, password string, role domain.Role) *domain.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	id := s.employees.nextID
	s.employees.nextID++
	employee := &domain.Employee{
		ID:           id,
		FirstName:    "Test",
		LastName:     "Employee",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	s.employees.byID[id] = employee
	return employee
}

func (s *testServer) seedAccount(email string) {
	s.accounts.byEmail[email] = &domain.Account{Email: email, Name: "Seeded Account"}
}

func (s *testServer) token(t *testing.T, email string, role domain.Role) string {
	t.Helper()
	token, _, err := s.tokens.GenerateToken(email, role)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func (s *testServer) do(t *testing.T, method, path, token, body string) *stdhttp.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func errorCode(t *testing.T, resp *stdhttp.Response) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding error envelope: %v", err)
	}
	return envelope.Error.Code
}

const logHoursBody = `{"email":"e@x.com","startDate":"2021-10-22","endDate":"2021-10-25","hoursWorked":40,"paidAmount":500}`

func TestRoutes_LogHours_RequiresToken(t *testing.T) {
	srv := newTestServer(t)
	srv.seedEmployee(t, "e@x.com", "s3cret", domain.RoleEmployee)

	resp := srv.do(t, stdhttp.MethodPost, "/logHours", "", logHoursBody)
	if resp.StatusCode != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if len(srv.hours.logs) != 0 {
		t.Fatalf("rejected request must not persist hour logs, found %d", len(srv.hours.logs))
	}
}

func TestRoutes_LogHours_Success(t *testing.T) {
	srv := newTestServer(t)
	srv.seedEmployee(t, "e@x.com", "s3cret", domain.RoleEmployee)
	token := srv.token(t, "e@x.com", domain.RoleEmployee)

	resp := srv.do(t, stdhttp.MethodPost, "/logHours", token, logHoursBody)
	if resp.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if len(srv.hours.logs) != 1 {
		t.Fatalf("expected one persisted hour log, found %d", len(srv.hours.logs))
	}
	for _, log := range srv.hours.logs {
		if log.EmployeeEmail != "e@x.com" || log.HoursWorked != 40 || log.PaidAmount != 500 {
			t.Fatalf("persisted log mismatch: %+v", log)
		}
	}
}

func TestRoutes_LogHours_InvertedDates(t *testing.T) {
	srv := newTestServer(t)
	srv.seedEmployee(t, "e@x.com", "s3cret", domain.RoleEmployee)
	token := srv.token(t, "e@x.com", domain.RoleEmployee)

	body := `{"email":"e@x.com","startDate":"2021-10-25","endDate":"2021-10-22","hoursWorked":40,"paidAmount":500}`
	resp := srv.do(t, stdhttp.MethodPost, "/logHours", token, body)
	if resp.StatusCode != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if code := errorCode(t, resp); code != "INVALID_ARGUMENT" {
		t.Fatalf("code = %s, want INVALID_ARGUMENT", code)
	}
	if len(srv.hours.logs) != 0 {
		t.Fatalf("rejected request must not persist hour logs, found %d", len(srv.hours.logs))
	}
}

func TestRoutes_LogHours_BadDateFormat(t *testing.T) {
	srv := newTestServer(t)
	srv.seedEmployee(t, "e@x.com", "s3cret", domain.RoleEmployee)
	token := srv.token(t, "e@x.com", domain.RoleEmployee)

	body := `{"email":"e@x.com","startDate":"22/10/2021","endDate":"2021-10-25","hoursWorked":40,"paidAmount":500}`
	resp := srv.do(t, stdhttp.MethodPost, "/logHours", token, body)
	if resp.StatusCode != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if code := errorCode(t, resp); code != "VALIDATION_FAILED" {
		t.Fatalf("code = %s, want VALIDATION_FAILED", code)
	}
}

func TestRoutes_ListUsers_RoleMembership(t *testing.T) {
	srv := newTestServer(t)
	srv.seedEmployee(t, "e@x.com", "s3cret", domain.RoleEmployee)

	resp := srv.do(t, stdhttp.MethodGet, "/users", srv.token(t, "e@x.com", domain.RoleEmployee), "")
	if resp.StatusCode != stdhttp.StatusForbidden {
		t.Fatalf("employee status = %d, want 403", resp.StatusCode)
	}

	resp = srv.do(t, stdhttp.MethodGet, "/users", srv.token(t, "s@x.com", domain.RoleSupervisor), "")
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("supervisor status = %d, want 200", resp.StatusCode)
	}

	resp = srv.do(t, stdhttp.MethodGet, "/users", srv.token(t, "a@x.com", domain.RoleAdmin), "")
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("admin status = %d, want 200", resp.StatusCode)
	}
}

func TestRoutes_GetUser_NumericParam(t *testing.T) {
	srv := newTestServer(t)
	employee := srv.seedEmployee(t, "e@x.com", "s3cret", domain.RoleEmployee)

	resp := srv.do(t, stdhttp.MethodGet, "/users/abc", "", "")
	if resp.StatusCode != stdhttp.StatusBadRequest {
		t.Fatalf("non-numeric status = %d, want 400", resp.StatusCode)
	}
	if code := errorCode(t, resp); code != "VALIDATION_FAILED" {
		t.Fatalf("code = %s, want VALIDATION_FAILED", code)
	}

	resp = srv.do(t, stdhttp.MethodGet, fmt.Sprintf("/users/%d", employee.ID), "", "")
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("seeded user status = %d, want 200", resp.StatusCode)
	}

	resp = srv.do(t, stdhttp.MethodGet, "/users/999", "", "")
	if resp.StatusCode != stdhttp.StatusNotFound {
		t.Fatalf("missing user status = %d, want 404", resp.StatusCode)
	}
}

func TestRoutes_RecordCall_UnknownAccount(t *testing.T) {
	srv := newTestServer(t)
	srv.seedEmployee(t, "e@x.com", "s3cret", domain.RoleEmployee)
	token := srv.token(t, "e@x.com", domain.RoleEmployee)

	body := `{"email":"ghost@nowhere.com","receiverName":"Pat","phoneNumber":"555-0100","action":"CALLED"}`
	resp := srv.do(t, stdhttp.MethodPost, "/calls", token, body)
	if resp.StatusCode != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if len(srv.calls.calls) != 0 {
		t.Fatalf("rejected request must not persist calls, found %d", len(srv.calls.calls))
	}
}

func TestRoutes_RecordCall_AttributesCaller(t *testing.T) {
	srv := newTestServer(t)
	srv.seedEmployee(t, "e@x.com", "s3cret", domain.RoleEmployee)
	srv.seedAccount("customer@acme.com")
	token := srv.token(t, "e@x.com", domain.RoleEmployee)

	body := `{"email":"customer@acme.com","receiverName":"Pat","phoneNumber":"555-0100","action":"FOLLOW UP","followUp":true}`
	resp := srv.do(t, stdhttp.MethodPost, "/calls", token, body)
	if resp.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if len(srv.calls.calls) != 1 {
		t.Fatalf("expected one persisted call, found %d", len(srv.calls.calls))
	}
	for _, call := range srv.calls.calls {
		if call.EmployeeEmail != "e@x.com" {
			t.Fatalf("call attributed to %q, want caller e@x.com", call.EmployeeEmail)
		}
		if call.Action != domain.ActionFollowUp {
			t.Fatalf("call action = %q, want %q", call.Action, domain.ActionFollowUp)
		}
	}
}

func TestRoutes_DeleteAccount_BlockedByCalls(t *testing.T) {
	srv := newTestServer(t)
	srv.seedEmployee(t, "a@x.com", "s3cret", domain.RoleAdmin)
	srv.seedAccount("customer@acme.com")
	srv.calls.calls[1] = &domain.Call{ID: 1, AccountEmail: "customer@acme.com", Action: domain.ActionCalled}

	resp := srv.do(t, stdhttp.MethodDelete, "/accounts/customer@acme.com", srv.token(t, "a@x.com", domain.RoleAdmin), "")
	if resp.StatusCode != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
	if _, ok := srv.accounts.byEmail["customer@acme.com"]; !ok {
		t.Fatalf("blocked delete must leave the account in place")
	}

	resp = srv.do(t, stdhttp.MethodDelete, "/accounts/customer@acme.com", srv.token(t, "e@x.com", domain.RoleEmployee), "")
	if resp.StatusCode != stdhttp.StatusForbidden {
		t.Fatalf("employee delete status = %d, want 403", resp.StatusCode)
	}
}

func TestRoutes_Login_IssuedTokenWorks(t *testing.T) {
	srv := newTestServer(t)
	srv.seedEmployee(t, "s@x.com", "s3cret", domain.RoleSupervisor)

	resp := srv.do(t, stdhttp.MethodPost, "/auth/login", "", `{"email":"s@x.com","password":"s3cret"}`)
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			Auth struct {
				Token string `json:"token"`
			} `json:"auth"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	if envelope.Data.Auth.Token == "" {
		t.Fatalf("login response missing token")
	}

	resp = srv.do(t, stdhttp.MethodGet, "/users", envelope.Data.Auth.Token, "")
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("token from login rejected: status = %d", resp.StatusCode)
	}

	resp = srv.do(t, stdhttp.MethodPost, "/auth/login", "", `{"email":"s@x.com","password":"wrong"}`)
	if resp.StatusCode != stdhttp.StatusUnauthorized {
		t.Fatalf("bad password status = %d, want 401", resp.StatusCode)
	}
}
