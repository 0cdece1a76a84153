package handlers

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/client"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/cep"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

// ------------------------------
// profiles
// ------------------------------

type memProfiles struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.Profile
}

func newMemProfiles(ps ...*models.Profile) *memProfiles {
	m := &memProfiles{byID: map[uuid.UUID]*models.Profile{}}
	for _, p := range ps {
		m.byID[p.UserID] = p
	}
	return m
}

func (m *memProfiles) EmailByUsername(_ context.Context, username string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.byID {
		if p.Username != nil && strings.EqualFold(*p.Username, username) {
			return p.Email, nil
		}
	}
	return "", profile.ErrUsernameNotFound
}

func (m *memProfiles) FindByEmail(_ context.Context, email string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.byID {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, profile.ErrNotFound
}

func (m *memProfiles) FindByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, profile.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProfiles) Create(_ context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == p.Email {
			return profile.ErrEmailTaken
		}
	}
	p.UserID = uuid.New()
	cp := *p
	m.byID[p.UserID] = &cp
	return nil
}

func (m *memProfiles) Update(_ context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.byID[p.UserID] = &cp
	return nil
}

func (m *memProfiles) ListSellers(_ context.Context, f profile.SellerFilter) ([]profile.SellerSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []profile.SellerSummary
	for _, p := range m.byID {
		if p.Role != string(profile.RoleVendedor) {
			continue
		}
		if f.Active != nil && p.Active != *f.Active {
			continue
		}
		out = append(out, profile.SellerSummary{Profile: *p})
	}
	return out, nil
}

// ------------------------------
// clients
// ------------------------------

type memClients struct {
	mu   sync.Mutex
	rows []models.Client
}

func (m *memClients) Create(_ context.Context, c *models.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.New()
	m.rows = append(m.rows, *c)
	return nil
}

func (m *memClients) List(_ context.Context, actor access.Actor, f client.Filter) ([]models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Client
	for _, c := range m.rows {
		if actor.Owns(c.SellerID) && client.Matches(c, f.Query) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memClients) Get(_ context.Context, actor access.Actor, id uuid.UUID) (*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.ID == id && actor.Owns(c.SellerID) {
			cp := c
			return &cp, nil
		}
	}
	return nil, client.ErrNotFound
}

func (m *memClients) Update(_ context.Context, c *models.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == c.ID {
			m.rows[i] = *c
		}
	}
	return nil
}

func (m *memClients) Delete(_ context.Context, actor access.Actor, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.rows {
		if c.ID == id && actor.Owns(c.SellerID) {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return client.ErrNotFound
}

// ------------------------------
// cep
// ------------------------------

type fakeLookup map[string]cep.Address

func (f fakeLookup) Lookup(_ context.Context, raw string) (*cep.Address, error) {
	if len(raw) != 8 {
		return nil, cep.ErrInvalid
	}
	a, ok := f[raw]
	if !ok {
		return nil, cep.ErrNotFound
	}
	return &a, nil
}
