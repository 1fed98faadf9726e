package site

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/folio/folio-api/internal/pkg/docstore"
)

// SettingsDocument is the settings document in the durable store
const SettingsDocument = "settings.json"

// Settings holds the operator-editable text fields rendered into the
// index artifact.
type Settings struct {
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	ContactTitle string `json:"contact_title"`
	ContactText  string `json:"contact_text"`
	ContactEmail string `json:"contact_email"`
}

// DefaultSettings returns the seed document used until the operator
// saves their own.
func DefaultSettings() Settings {
	return Settings{
		HeroTitle:    "Portfolio",
		HeroSubtitle: "Selected works",
		ContactTitle: "Get in touch",
		ContactText:  "Available for commissions and collaborations.",
		ContactEmail: "hello@example.com",
	}
}

// SettingsStore persists site settings as a single JSON document,
// mirroring the registry's read-modify-rewrite cycle.
type SettingsStore struct {
	mu       sync.Mutex
	docs     docstore.Store
	settings Settings
}

// NewSettingsStore loads settings, falling back to defaults when the
// document is missing or unreadable.
func NewSettingsStore(docs docstore.Store) *SettingsStore {
	s := &SettingsStore{docs: docs, settings: DefaultSettings()}

	data, err := docs.Read(SettingsDocument)
	if err == nil {
		var loaded Settings
		if err = json.Unmarshal(data, &loaded); err == nil {
			s.settings = loaded
			return s
		}
	}

	log.Warn().Err(err).Msg("Settings document missing or unreadable, starting from default")
	return s
}

// Load returns the current settings
func (s *SettingsStore) Load() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Save replaces the settings document wholesale
func (s *SettingsStore) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := s.docs.Write(SettingsDocument, data); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	s.settings = settings
	return nil
}
