package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"healthshare/internal/models"
	"healthshare/internal/sharing"
)

// memLinkStore is a minimal in-memory LinkStore for handler tests.
type memLinkStore struct {
	mu    sync.Mutex
	links map[string]*models.ShareLink
}

func newMemLinkStore() *memLinkStore {
	return &memLinkStore{links: make(map[string]*models.ShareLink)}
}

func (s *memLinkStore) InsertShareLink(_ context.Context, link *models.ShareLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[link.Token]; ok {
		return sharing.ErrDuplicateToken
	}
	cp := *link
	s.links[link.Token] = &cp
	return nil
}

func (s *memLinkStore) GetShareLinkByToken(_ context.Context, token string) (*models.ShareLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	link, ok := s.links[token]
	if !ok {
		return nil, sharing.ErrLinkNotFound
	}
	cp := *link
	return &cp, nil
}

func (s *memLinkStore) ListShareLinksByOwner(_ context.Context, owner uuid.UUID) ([]models.ShareLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ShareLink
	for _, l := range s.links {
		if l.OwnerUserID == owner {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (s *memLinkStore) DeactivateShareLink(_ context.Context, owner, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.links {
		if l.ID == id && l.OwnerUserID == owner {
			l.Active = false
			return nil
		}
	}
	return sharing.ErrLinkNotFound
}

func (s *memLinkStore) DeleteShareLink(_ context.Context, owner, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, l := range s.links {
		if l.ID == id && l.OwnerUserID == owner {
			delete(s.links, token)
			return nil
		}
	}
	return sharing.ErrLinkNotFound
}

func (s *memLinkStore) RecordShareLinkAccess(_ context.Context, id uuid.UUID, at time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.links {
		if l.ID == id {
			l.AccessCount++
			t := at
			l.LastAccessedAt = &t
			return l.AccessCount, nil
		}
	}
	return 0, sharing.ErrLinkNotFound
}

// memRecordStore serves one user with one condition.
type memRecordStore struct {
	userID uuid.UUID
}

func (s *memRecordStore) UserExists(_ context.Context, id uuid.UUID) (bool, error) {
	return id == s.userID, nil
}

func (s *memRecordStore) GetProfile(_ context.Context, _ uuid.UUID) (*models.PatientProfile, error) {
	return nil, nil
}

func (s *memRecordStore) ListConditions(_ context.Context, _ uuid.UUID) ([]models.Condition, error) {
	return []models.Condition{{ID: uuid.New(), Condition: "asthma", Status: models.ConditionChronic}}, nil
}

func (s *memRecordStore) ListMedications(_ context.Context, _ uuid.UUID) ([]models.Medication, error) {
	return nil, nil
}

func (s *memRecordStore) ListScans(_ context.Context, _ uuid.UUID) ([]models.Scan, error) {
	return nil, nil
}

func (s *memRecordStore) ListLabResults(_ context.Context, _ uuid.UUID) ([]models.LabResult, error) {
	return nil, nil
}

func newRedeemApp(t *testing.T) (*fiber.App, *sharing.Service, uuid.UUID) {
	t.Helper()
	owner := uuid.New()
	svc := sharing.NewService(newMemLinkStore(), &memRecordStore{userID: owner}, time.UTC, false)

	app := fiber.New()
	handler := NewRedeemHandler(svc)
	app.Get("/api/share/:token", handler.Redeem)
	return app, svc, owner
}

func TestRedeemValidToken(t *testing.T) {
	app, svc, owner := newRedeemApp(t)

	link, err := svc.Create(context.Background(), owner, 7)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/share/"+link.Token, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Conditions  []models.Condition `json:"conditions"`
			AccessCount int                `json:"access_count"`
		} `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("bad response body %s: %v", raw, err)
	}
	if body.Status != "ok" {
		t.Errorf("status field = %q", body.Status)
	}
	if len(body.Data.Conditions) != 1 {
		t.Errorf("conditions = %d, want 1", len(body.Data.Conditions))
	}
	if body.Data.AccessCount != 1 {
		t.Errorf("access_count = %d, want 1", body.Data.AccessCount)
	}
}

// Unknown, revoked and malformed tokens must be indistinguishable to the
// caller: same status code, same body.
func TestRedeemFailuresAreUniform(t *testing.T) {
	app, svc, owner := newRedeemApp(t)

	link, err := svc.Create(context.Background(), owner, 7)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := svc.Revoke(context.Background(), owner, link.ID); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	// A never-issued token, the revoked token, and two malformed tokens.
	tokens := []string{
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		link.Token,
		"short",
		"bad.token.bad.token.bad.token.bad",
	}

	var bodies []string
	for _, token := range tokens {
		req := httptest.NewRequest(http.MethodGet, "/api/share/"+token, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request for %q failed: %v", token, err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("token %q: status = %d, want 404", token, resp.StatusCode)
		}
		raw, _ := io.ReadAll(resp.Body)
		bodies = append(bodies, string(raw))
	}

	for i := 1; i < len(bodies); i++ {
		if bodies[i] != bodies[0] {
			t.Errorf("response bodies differ between failure modes:\n%s\n%s", bodies[0], bodies[i])
		}
	}
}
