package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"

	"github.com/AchilleKettyetta/bstay/models"
	"github.com/AchilleKettyetta/bstay/services"
	"github.com/AchilleKettyetta/bstay/storage"
)

type memoryBackend struct {
	values map[string]string
}

func (m *memoryBackend) Get(_ context.Context, key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", storage.ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryBackend) Set(_ context.Context, key string, value string) error {
	m.values[key] = value
	return nil
}

// buildTestApp wires the same parties as main against an in-memory backend.
func buildTestApp(t *testing.T) (*iris.Application, *storage.Store) {
	t.Helper()

	store := storage.NewStore(storage.NewAdapter(&memoryBackend{values: map[string]string{}}))
	store.Initialize(context.Background())
	h := NewHandler(store, services.NewBookingEngine(store))

	app := iris.New()
	app.Validator = validator.New()

	user := app.Party("/api/user")
	{
		user.Post("/register", h.Register)
		user.Post("/login", h.Login)
		user.Post("/logout", h.Logout)
		user.Get("/session", h.GetSession)
	}
	property := app.Party("/api/property")
	{
		property.Get("/", h.GetProperties)
		property.Get("/{id:int64}", h.GetProperty)
	}
	location := app.Party("/api/location")
	{
		location.Get("/locations", h.GetAvailableLocations)
	}
	reservations := app.Party("/api/reservations")
	{
		reservations.Post("/", h.CreateReservation)
		reservations.Get("/user/{id:int64}", h.RequireSession, h.GetUserReservations)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("build app: %v", err)
	}
	return app, store
}

func doJSON(app *iris.Application, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestRegisterLoginBookFlow(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(app, http.MethodPost, "/api/user/register", iris.Map{
		"name":     "Awa Kaboré",
		"email":    "awa@example.com",
		"phone":    "70123456",
		"password": "secret",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(app, http.MethodPost, "/api/user/login", iris.Map{
		"email":    "awa@example.com",
		"password": "secret",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var user models.User
	if err := json.Unmarshal(resp.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	resp = doJSON(app, http.MethodGet, "/api/user/session", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("session: expected 200, got %d", resp.Code)
	}

	resp = doJSON(app, http.MethodPost, "/api/reservations", iris.Map{
		"propertyId": 2,
		"checkin":    "2024-06-01",
		"checkout":   "2024-06-04",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("book: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var reservation models.Reservation
	if err := json.Unmarshal(resp.Body.Bytes(), &reservation); err != nil {
		t.Fatalf("decode reservation: %v", err)
	}
	if reservation.TotalPrice != 45000 || reservation.Status != models.StatusConfirmed {
		t.Fatalf("unexpected reservation: %+v", reservation)
	}

	resp = doJSON(app, http.MethodGet, "/api/reservations/user/"+strconv.FormatInt(user.ID, 10), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list reservations: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var listed []models.Reservation
	if err := json.Unmarshal(resp.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode reservations: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != reservation.ID {
		t.Fatalf("unexpected reservation list: %+v", listed)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app, _ := buildTestApp(t)

	payload := iris.Map{"name": "Awa", "email": "awa@example.com", "phone": "70123456", "password": "secret"}
	if resp := doJSON(app, http.MethodPost, "/api/user/register", payload); resp.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", resp.Code)
	}
	resp := doJSON(app, http.MethodPost, "/api/user/register", payload)
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", resp.Code)
	}
}

func TestRegisterRejectsBadPhone(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(app, http.MethodPost, "/api/user/register", iris.Map{
		"name": "Awa", "email": "awa@example.com", "phone": "1234", "password": "secret",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad phone, got %d", resp.Code)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(app, http.MethodPost, "/api/user/login", iris.Map{
		"email": "nobody@example.com", "password": "nope",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestSessionGoneAfterLogout(t *testing.T) {
	app, store := buildTestApp(t)
	ctx := context.Background()

	user, _ := store.Register(ctx, "Awa", "awa@example.com", "70123456", "pw")
	if _, err := store.Authenticate(ctx, "awa@example.com", "pw"); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	if resp := doJSON(app, http.MethodPost, "/api/user/logout", nil); resp.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", resp.Code)
	}
	if resp := doJSON(app, http.MethodGet, "/api/user/session", nil); resp.Code != http.StatusUnauthorized {
		t.Fatalf("session after logout: expected 401, got %d", resp.Code)
	}
	if resp := doJSON(app, http.MethodGet, "/api/reservations/user/"+strconv.FormatInt(user.ID, 10), nil); resp.Code != http.StatusUnauthorized {
		t.Fatalf("reservations after logout: expected 401, got %d", resp.Code)
	}
}

func TestReservationsForbiddenForOtherUser(t *testing.T) {
	app, store := buildTestApp(t)
	ctx := context.Background()

	store.Register(ctx, "Awa", "awa@example.com", "70123456", "pw")
	other, _ := store.Register(ctx, "Issa", "issa@example.com", "76000000", "pw")
	if _, err := store.Authenticate(ctx, "awa@example.com", "pw"); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	resp := doJSON(app, http.MethodGet, "/api/reservations/user/"+strconv.FormatInt(other.ID, 10), nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestBookingRequiresLogin(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(app, http.MethodPost, "/api/reservations", iris.Map{
		"propertyId": 2, "checkin": "2024-06-01", "checkout": "2024-06-04",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestGetPropertiesWithLocationFilter(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(app, http.MethodGet, "/api/property?location=bobo-dioulasso", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var properties []models.Property
	if err := json.Unmarshal(resp.Body.Bytes(), &properties); err != nil {
		t.Fatalf("decode properties: %v", err)
	}
	if len(properties) != 1 || properties[0].Location != "bobo-dioulasso" {
		t.Fatalf("unexpected filter result: %+v", properties)
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(app, http.MethodGet, "/api/property/9999", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
