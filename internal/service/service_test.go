package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Skotchmaster/boutiquechat/internal/events"
	"github.com/Skotchmaster/boutiquechat/internal/models"
	"github.com/Skotchmaster/boutiquechat/internal/repo/repotest"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type fakeSearcher struct {
	indexed map[string]models.Product
	deleted []string
	fail    bool
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{indexed: map[string]models.Product{}}
}

func (f *fakeSearcher) Enabled() bool { return true }

func (f *fakeSearcher) IndexProduct(_ context.Context, p *models.Product) error {
	if f.fail {
		return errors.New("es down")
	}
	f.indexed[p.ID.String()] = *p
	return nil
}

func (f *fakeSearcher) DeleteProduct(_ context.Context, id string) error {
	if f.fail {
		return errors.New("es down")
	}
	delete(f.indexed, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSearcher) Search(_ context.Context, q string, from, size int) (int64, []models.Product, error) {
	out := FilterProducts(f.values(), ProductFilter{Query: q})
	return int64(len(out)), out, nil
}

func (f *fakeSearcher) values() []models.Product {
	out := make([]models.Product, 0, len(f.indexed))
	for _, p := range f.indexed {
		out = append(out, p)
	}
	return out
}

type testEnv struct {
	catalog  *CatalogService
	settings *SettingsService
	auth     *AuthService
	pub      *recordingPublisher
	search   *fakeSearcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	r := repotest.New(t)
	pub := &recordingPublisher{}
	search := newFakeSearcher()

	return &testEnv{
		catalog:  &CatalogService{Repo: r, Events: pub, Search: search},
		settings: &SettingsService{Repo: r, Events: pub},
		auth:     &AuthService{Repo: r, JWTSecret: []byte("test-jwt-secret")},
		pub:      pub,
		search:   search,
	}
}

func names(list []models.Category) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Name
	}
	return out
}
