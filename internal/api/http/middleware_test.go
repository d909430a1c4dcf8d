package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/badobtech/backoffice-service/internal/observability"
	apperrors "github.com/badobtech/backoffice-service/pkg/util"
)

func loggedRequestStatus(t *testing.T, logs *observer.ObservedLogs) int64 {
	t.Helper()
	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log entry, got %d", len(entries))
	}
	for _, field := range entries[0].Context {
		if field.Key == "status" {
			return field.Integer
		}
	}
	t.Fatalf("request log entry has no status field")
	return 0
}

func TestRequestLogger_RecordsErrorStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), observability.NewMetrics(), 0)
	app.Get("/denied", func(c *fiber.Ctx) error {
		return apperrors.NewForbidden("insufficient role")
	})

	resp, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/denied", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}

	if status := loggedRequestStatus(t, logs); status != stdhttp.StatusForbidden {
		t.Fatalf("logged status = %d, want 403", status)
	}
}

func TestRequestLogger_RecordsSuccessStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), observability.NewMetrics(), 0)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(stdhttp.StatusCreated)
	})

	resp, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/ok", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	if status := loggedRequestStatus(t, logs); status != stdhttp.StatusCreated {
		t.Fatalf("logged status = %d, want 201", status)
	}
}
