package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/elite-arena/apiserver/internal/auth"
	"github.com/elite-arena/apiserver/internal/services"
	"github.com/elite-arena/apiserver/internal/store"
	"github.com/elite-arena/apiserver/types"
)

const testSecret = "test-secret"

type memUserRepo struct {
	nextID int
	users  map[int]types.User
}

func (m *memUserRepo) GetByID(_ context.Context, id int) (types.User, error) {
	user, ok := m.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (types.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (m *memUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return user, nil
}

type memRegistrationRepo struct {
	nextID        int
	clock         time.Time
	registrations map[int]types.Registration
}

func (m *memRegistrationRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memRegistrationRepo) List(_ context.Context) ([]types.Registration, error) {
	all := make([]types.Registration, 0, len(m.registrations))
	for _, reg := range m.registrations {
		all = append(all, reg)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (m *memRegistrationRepo) Get(_ context.Context, id int) (types.Registration, error) {
	reg, ok := m.registrations[id]
	if !ok {
		return types.Registration{}, store.ErrNotFound
	}
	return reg, nil
}

func (m *memRegistrationRepo) Create(_ context.Context, reg types.Registration) (types.Registration, error) {
	reg.ID = m.nextID
	m.nextID++
	now := m.tick()
	reg.CreatedAt = now
	reg.UpdatedAt = now
	m.registrations[reg.ID] = reg
	return reg, nil
}

func (m *memRegistrationRepo) UpdateStatus(_ context.Context, id int, status types.Status) (types.Registration, error) {
	reg, ok := m.registrations[id]
	if !ok {
		return types.Registration{}, store.ErrNotFound
	}
	reg.Status = status
	reg.UpdatedAt = m.tick()
	m.registrations[id] = reg
	return reg, nil
}

func (m *memRegistrationRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.registrations[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.registrations, id)
	return nil
}

// newTestRouter wires the full route surface against in-memory
// repositories, no broker, and no archive.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	userRepo := &memUserRepo{nextID: 1, users: make(map[int]types.User)}
	registrationRepo := &memRegistrationRepo{
		nextID:        1,
		clock:         time.Now(),
		registrations: make(map[int]types.Registration),
	}

	userService := services.NewUserService(userRepo)
	registrationService := services.NewRegistrationService(registrationRepo, nil, nil, nil)
	issuer := auth.NewIssuer(testSecret)

	router := chi.NewRouter()
	router.Get("/healthz", Healthz)
	router.Route("/auth", func(r chi.Router) {
		AuthRouter(r, userService, issuer)
	})
	router.Route("/registrations", func(r chi.Router) {
		RegistrationRouter(r, registrationService)
	})
	router.Route("/products", func(r chi.Router) {
		ProductRouter(r)
	})
	return router
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	if err := json.NewDecoder(recorder.Body).Decode(&value); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return value
}
