package project

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/folio/folio-api/internal/pkg/docstore"
)

// DocumentName is the registry's document in the durable store
const DocumentName = "projects.json"

// Store owns the project registry: an in-memory mapping loaded once at
// startup and flushed to the document store in full on every mutation.
// A mutex serializes mutations so overlapping writers cannot drop each
// other's snapshot.
type Store struct {
	mu       sync.Mutex
	docs     docstore.Store
	projects map[string]*Project
}

// NewStore loads the registry, falling back to the built-in default
// document when it is missing or unreadable.
func NewStore(docs docstore.Store) *Store {
	s := &Store{docs: docs}

	data, err := docs.Read(DocumentName)
	if err == nil {
		if err = json.Unmarshal(data, &s.projects); err == nil && s.projects != nil {
			for id, p := range s.projects {
				p.ID = id
			}
			return s
		}
	}

	log.Warn().Err(err).Msg("Registry document missing or unreadable, starting from default")
	s.projects = DefaultRegistry()
	return s
}

// Get returns one project by id
func (s *Store) Get(id string) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, ErrProjectNotFound
	}
	cp := *p
	return &cp, nil
}

// List returns a copy of the full mapping, order-independent
func (s *Store) List() map[string]*Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]*Project, len(s.projects))
	for id, p := range s.projects {
		cp := *p
		out[id] = &cp
	}
	return out
}

// Sorted returns all projects by ascending display order. Ties break on
// id so repeated runs always produce the same sequence.
func (s *Store) Sorted() []*Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Project, 0, len(s.projects))
	for _, p := range s.projects {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Upsert replaces the record at p.ID wholesale. When hasOrder is false
// the project is appended: order becomes the current count plus one.
func (s *Store) Upsert(p *Project, hasOrder bool) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !hasOrder {
		p.Order = len(s.projects) + 1
	}

	cp := *p
	s.projects[p.ID] = &cp
	if err := s.flushLocked(); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a project, signalling ErrProjectNotFound when absent
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return ErrProjectNotFound
	}
	delete(s.projects, id)
	return s.flushLocked()
}

// Reorder assigns each listed id its 1-based position. Ids not in the
// registry are skipped silently; registry entries missing from the list
// keep their current order.
func (s *Store) Reorder(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range ids {
		if p, ok := s.projects[id]; ok {
			p.Order = i + 1
		}
	}
	return s.flushLocked()
}

// flushLocked rewrites the whole registry document. Callers must hold mu.
func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize registry: %w", err)
	}
	if err := s.docs.Write(DocumentName, data); err != nil {
		return fmt.Errorf("failed to persist registry: %w", err)
	}
	return nil
}
