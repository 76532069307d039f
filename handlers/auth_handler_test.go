package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"planvite.app/configs"
	"planvite.app/configs/configslog"
	"planvite.app/database"
	"planvite.app/handlers"
	"planvite.app/routes"
	"planvite.app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, cfg *configs.Config) *fiber.App {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.RunMigrationsInOrder(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpiry)
	eventService := services.NewEventService(db, services.EventServiceOptions{
		CommentsMembersOnly: cfg.CommentsMembersOnly,
	})

	app := fiber.New()
	routes.SetupRoutes(app, cfg, handlers.NewAuthHandler(authService), handlers.NewEventHandler(eventService))
	return app
}

func testConfig() *configs.Config {
	return &configs.Config{Port: "0", JWTSecret: "test-secret", JWTExpiry: time.Hour}
}

// request performs a JSON request against the app and returns the status code
// and raw response body.
func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, raw
}

func decode(t *testing.T, raw []byte, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
}

// registerAndLogin creates a user over HTTP and returns its id and token.
func registerAndLogin(t *testing.T, app *fiber.App, name, email string) (uint, string) {
	t.Helper()
	status, raw := request(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": name, "email": email, "password": "secret123",
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, status, raw)
	}
	var user struct {
		ID uint `json:"id"`
	}
	decode(t, raw, &user)

	status, raw = request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": email, "password": "secret123",
	})
	if status != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, status, raw)
	}
	var login struct {
		Token string `json:"token"`
	}
	decode(t, raw, &login)
	if login.Token == "" {
		t.Fatal("empty token")
	}
	return user.ID, login.Token
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t, testConfig())
	status, raw := request(t, app, http.MethodGet, "/", "", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if string(raw) != "Collaborative Event Planner API is running" {
		t.Fatalf("body = %q", raw)
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t, testConfig())

	status, _ := request(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Alice", "email": "not-an-email", "password": "secret123",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("bad email: status = %d", status)
	}

	status, _ = request(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Alice", "email": "alice@example.com", "password": "tiny",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("short password: status = %d", status)
	}
}

func TestRegisterConflictAndLoginFailure(t *testing.T) {
	app := newTestApp(t, testConfig())
	registerAndLogin(t, app, "Alice", "alice@example.com")

	status, _ := request(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Clone", "email": "alice@example.com", "password": "secret123",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate register: status = %d", status)
	}

	status, _ = request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "alice@example.com", "password": "wrong-pass",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("bad login: status = %d", status)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t, testConfig())

	status, _ := request(t, app, http.MethodGet, "/api/events", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("missing token: status = %d", status)
	}

	status, _ = request(t, app, http.MethodGet, "/api/events", "not-a-jwt", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d", status)
	}
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	app := newTestApp(t, testConfig())
	status, raw := request(t, app, http.MethodGet, "/nope", "", nil)
	if status != http.StatusNotFound {
		t.Fatalf("status = %d", status)
	}
	var body struct {
		Error string `json:"error"`
	}
	decode(t, raw, &body)
	if body.Error == "" {
		t.Fatalf("expected json error body, got %s", raw)
	}
}
