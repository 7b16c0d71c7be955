// Package session keeps extracted profiles, design choices and generated
// bundles for the lifetime of the process.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/nikogura/brand-weaver/pkg/design"
	"github.com/nikogura/brand-weaver/pkg/profile"
	"github.com/nikogura/brand-weaver/pkg/site"
)

// Store holds per-session state. Writes are last-write-wins per key.
type Store interface {
	CreateSession() (id string)

	SaveProfile(id string, data profile.Data)
	GetProfile(id string) (data profile.Data, ok bool)
	SaveDesign(id string, cfg design.Config)
	GetDesign(id string) (cfg design.Config, ok bool)
	SaveBundle(id string, bundle site.Bundle)
	GetBundle(id string) (bundle site.Bundle, ok bool)

	LatestSession() (id string, ok bool)
	LatestProfile() (data profile.Data, ok bool)
	LatestDesign() (cfg design.Config, ok bool)
	LatestBundle() (bundle site.Bundle, ok bool)
}

// MemoryStore is an in-memory Store. It never expires entries.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]profile.Data
	designs  map[string]design.Config
	bundles  map[string]site.Bundle
	latest   string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() (s *MemoryStore) {
	s = &MemoryStore{
		profiles: make(map[string]profile.Data),
		designs:  make(map[string]design.Config),
		bundles:  make(map[string]site.Bundle),
	}
	return s
}

// CreateSession returns a new random session id and marks it latest.
func (s *MemoryStore) CreateSession() (id string) {
	id = uuid.NewString()

	s.mu.Lock()
	s.latest = id
	s.mu.Unlock()

	return id
}

// SaveProfile stores data for id and marks id latest.
func (s *MemoryStore) SaveProfile(id string, data profile.Data) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[id] = data
	s.latest = id
}

// GetProfile returns the profile saved for id.
func (s *MemoryStore) GetProfile(id string) (data profile.Data, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok = s.profiles[id]
	return data, ok
}

// SaveDesign stores cfg for id.
func (s *MemoryStore) SaveDesign(id string, cfg design.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.designs[id] = cfg
}

// GetDesign returns the design saved for id.
func (s *MemoryStore) GetDesign(id string) (cfg design.Config, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok = s.designs[id]
	return cfg, ok
}

// SaveBundle stores the generated bundle for id.
func (s *MemoryStore) SaveBundle(id string, bundle site.Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bundles[id] = bundle
}

// GetBundle returns the bundle generated for id.
func (s *MemoryStore) GetBundle(id string) (bundle site.Bundle, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bundle, ok = s.bundles[id]
	return bundle, ok
}

// LatestSession returns the most recently created or profiled session.
func (s *MemoryStore) LatestSession() (id string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id = s.latest
	ok = id != ""
	return id, ok
}

// LatestProfile returns the profile of the latest session.
func (s *MemoryStore) LatestProfile() (data profile.Data, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok = s.profiles[s.latest]
	return data, ok
}

// LatestDesign returns the design of the latest session.
func (s *MemoryStore) LatestDesign() (cfg design.Config, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok = s.designs[s.latest]
	return cfg, ok
}

// LatestBundle returns the bundle of the latest session.
func (s *MemoryStore) LatestBundle() (bundle site.Bundle, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bundle, ok = s.bundles[s.latest]
	return bundle, ok
}
