package test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/prypal/backend/internal/app"
	"github.com/prypal/backend/internal/app/appcontext"
)

var (
	gMu       sync.Mutex
	gFiberApp *fiber.App
)

func startup(t *testing.T) {
	t.Helper()

	if os.Getenv("PRYPAL_TEST_PG_DSN") == "" {
		t.Skip("PRYPAL_TEST_PG_DSN not set; skipping infra-backed suite")
	}
	os.Setenv("PRYPAL_POSTGRES_DSN", os.Getenv("PRYPAL_TEST_PG_DSN"))

	gMu.Lock()
	defer gMu.Unlock()

	if gFiberApp != nil {
		return
	}

	var fiberApp *fiber.App
	fxApp := fxtest.New(t,
		append(app.Options(appcontext.Declare(appcontext.EnvServer)), fx.Populate(&fiberApp))...,
	)
	fxApp.RequireStart()

	gFiberApp = fiberApp
}

func request(t *testing.T, req *http.Request, msTimeout ...int) *http.Response {
	t.Helper()

	resp, err := gFiberApp.Test(req, msTimeout...)
	if err != nil {
		t.Fatal(err)
	}

	return resp
}

func TestAPIMeta(t *testing.T) {
	startup(t)
	t.Parallel()

	t.Run("health", func(t *testing.T) {
		resp := request(t, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "expect health to be ok: %s", bodyString(resp))
	})

	t.Run("version", func(t *testing.T) {
		resp := request(t, httptest.NewRequest(http.MethodGet, "/api/v1/version", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, bodyString(resp), "version")
	})
}

func TestAPIDrums(t *testing.T) {
	startup(t)
	t.Parallel()

	t.Run("UnknownMaterial", func(t *testing.T) {
		resp := request(t, httptest.NewRequest(http.MethodGet, "/api/v1/materials/NO_SUCH_MATERIAL/drums", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, bodyString(resp), "NOT_FOUND")
	})

	t.Run("InvalidAppendBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/materials/NO_SUCH_MATERIAL/drums", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp := request(t, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, bodyString(resp), "INVALID_REQUEST")
	})

	t.Run("InvalidCompleteType", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/materials/NO_SUCH_MATERIAL/pallets", strings.NewReader(`{"completeType":"SOMEHOW"}`))
		req.Header.Set("Content-Type", "application/json")

		resp := request(t, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, bodyString(resp), "INVALID_REQUEST")
	})
}
