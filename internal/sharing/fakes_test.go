package sharing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"healthshare/internal/models"
)

// fakeLinkStore is an in-memory LinkStore with the same contract as the SQL
// implementation, including owner scoping and an atomic access counter.
type fakeLinkStore struct {
	mu    sync.Mutex
	links map[uuid.UUID]*models.ShareLink

	insertErr error
	accessErr error
}

func newFakeLinkStore() *fakeLinkStore {
	return &fakeLinkStore{links: make(map[uuid.UUID]*models.ShareLink)}
}

func (f *fakeLinkStore) InsertShareLink(_ context.Context, link *models.ShareLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, l := range f.links {
		if l.Token == link.Token {
			return ErrDuplicateToken
		}
	}
	cp := *link
	f.links[link.ID] = &cp
	return nil
}

func (f *fakeLinkStore) GetShareLinkByToken(_ context.Context, token string) (*models.ShareLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.links {
		if l.Token == token {
			cp := *l
			return &cp, nil
		}
	}
	return nil, ErrLinkNotFound
}

func (f *fakeLinkStore) ListShareLinksByOwner(_ context.Context, owner uuid.UUID) ([]models.ShareLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ShareLink
	for _, l := range f.links {
		if l.OwnerUserID == owner {
			cp := *l
			cp.Snapshot = nil
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeLinkStore) DeactivateShareLink(_ context.Context, owner, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.links[id]
	if !ok || l.OwnerUserID != owner {
		return ErrLinkNotFound
	}
	l.Active = false
	return nil
}

func (f *fakeLinkStore) DeleteShareLink(_ context.Context, owner, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.links[id]
	if !ok || l.OwnerUserID != owner {
		return ErrLinkNotFound
	}
	delete(f.links, id)
	return nil
}

func (f *fakeLinkStore) RecordShareLinkAccess(_ context.Context, id uuid.UUID, at time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.accessErr != nil {
		return 0, f.accessErr
	}
	l, ok := f.links[id]
	if !ok {
		return 0, ErrLinkNotFound
	}
	l.AccessCount++
	l.LastAccessedAt = &at
	return l.AccessCount, nil
}

func (f *fakeLinkStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.links)
}

// fakeRecordStore is an in-memory RecordStore.
type fakeRecordStore struct {
	mu          sync.Mutex
	users       map[uuid.UUID]bool
	profiles    map[uuid.UUID]*models.PatientProfile
	conditions  map[uuid.UUID][]models.Condition
	medications map[uuid.UUID][]models.Medication
	scans       map[uuid.UUID][]models.Scan
	labResults  map[uuid.UUID][]models.LabResult

	readErr error
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{
		users:       make(map[uuid.UUID]bool),
		profiles:    make(map[uuid.UUID]*models.PatientProfile),
		conditions:  make(map[uuid.UUID][]models.Condition),
		medications: make(map[uuid.UUID][]models.Medication),
		scans:       make(map[uuid.UUID][]models.Scan),
		labResults:  make(map[uuid.UUID][]models.LabResult),
	}
}

func (f *fakeRecordStore) addUser() uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.users[id] = true
	return id
}

func (f *fakeRecordStore) addCondition(user uuid.UUID, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conditions[user] = append(f.conditions[user], models.Condition{
		ID:        uuid.New(),
		UserID:    user,
		Condition: name,
		Status:    models.ConditionActive,
	})
}

func (f *fakeRecordStore) UserExists(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return false, f.readErr
	}
	return f.users[id], nil
}

func (f *fakeRecordStore) GetProfile(_ context.Context, id uuid.UUID) (*models.PatientProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.profiles[id], nil
}

func (f *fakeRecordStore) ListConditions(_ context.Context, id uuid.UUID) ([]models.Condition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.conditions[id], nil
}

func (f *fakeRecordStore) ListMedications(_ context.Context, id uuid.UUID) ([]models.Medication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.medications[id], nil
}

func (f *fakeRecordStore) ListScans(_ context.Context, id uuid.UUID) ([]models.Scan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.scans[id], nil
}

func (f *fakeRecordStore) ListLabResults(_ context.Context, id uuid.UUID) ([]models.LabResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.labResults[id], nil
}
