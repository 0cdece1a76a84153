package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

type fakeProfiles struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.Profile
}

func newFakeProfiles(ps ...*models.Profile) *fakeProfiles {
	f := &fakeProfiles{byID: map[uuid.UUID]*models.Profile{}}
	for _, p := range ps {
		f.byID[p.UserID] = p
	}
	return f
}

func (f *fakeProfiles) EmailByUsername(_ context.Context, username string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.Username != nil && strings.EqualFold(*p.Username, username) {
			return p.Email, nil
		}
	}
	return "", profile.ErrUsernameNotFound
}

func (f *fakeProfiles) FindByEmail(_ context.Context, email string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, profile.ErrNotFound
}

func (f *fakeProfiles) FindByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, profile.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfiles) Create(_ context.Context, p *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, other := range f.byID {
		if other.Email == p.Email {
			return profile.ErrEmailTaken
		}
		if p.Username != nil && other.Username != nil && *other.Username == *p.Username {
			return profile.ErrUsernameTaken
		}
	}
	cp := *p
	f.byID[p.UserID] = &cp
	return nil
}

func (f *fakeProfiles) Update(_ context.Context, p *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.byID[p.UserID] = &cp
	return nil
}

func (f *fakeProfiles) ListSellers(context.Context, profile.SellerFilter) ([]profile.SellerSummary, error) {
	return nil, nil
}

var _ profile.Repository = (*fakeProfiles)(nil)
