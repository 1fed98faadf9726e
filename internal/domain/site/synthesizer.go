package site

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/folio/folio-api/internal/domain/project"
)

// Artifact names under the site directory
const (
	IndexArtifact    = "index.html"
	TemplateArtifact = "project.html"
)

// Registry is the project source the synthesizer reads from
type Registry interface {
	Sorted() []*project.Project
}

// SettingsProvider supplies the text fields rendered into the index
type SettingsProvider interface {
	Load() Settings
}

// Synthesizer rewrites the static site's derived artifacts from the
// current registry and settings state. A mutex serializes rewrites so
// overlapping triggers cannot interleave partial writes to the same
// artifact.
type Synthesizer struct {
	mu        sync.Mutex
	registry  Registry
	settings  SettingsProvider
	artifacts ArtifactStore
}

// NewSynthesizer creates the synthesizer
func NewSynthesizer(registry Registry, settings SettingsProvider, artifacts ArtifactStore) *Synthesizer {
	return &Synthesizer{registry: registry, settings: settings, artifacts: artifacts}
}

// RegenerateAll rewrites both artifacts. The two rewrites are
// independent failure domains: an index failure does not prevent the
// template attempt, and both errors are reported together.
func (s *Synthesizer) RegenerateAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if err := s.regenerateIndexLocked(); err != nil {
		log.Error().Err(err).Msg("Index synthesis failed")
		errs = append(errs, fmt.Errorf("index: %w", err))
	}
	if err := s.regenerateTemplateLocked(); err != nil {
		log.Error().Err(err).Msg("Template synthesis failed")
		errs = append(errs, fmt.Errorf("template: %w", err))
	}
	return errors.Join(errs...)
}

// RegenerateIndex rewrites only the index artifact; settings saves
// trigger this without touching the template.
func (s *Synthesizer) RegenerateIndex() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regenerateIndexLocked()
}

func (s *Synthesizer) regenerateIndexLocked() error {
	doc, err := s.artifacts.ReadText(IndexArtifact)
	if err != nil {
		return err
	}

	settings := s.settings.Load()
	projects := s.registry.Sorted()

	doc = replaceInner(doc, heroTitleRe, html.EscapeString(settings.HeroTitle))
	doc = replaceInner(doc, heroSubtitleRe, html.EscapeString(settings.HeroSubtitle))
	doc = replaceInner(doc, contactTitleRe, html.EscapeString(settings.ContactTitle))
	doc = replaceInner(doc, contactTextRe, html.EscapeString(settings.ContactText))
	doc = replaceContactLink(doc, settings.ContactEmail)
	doc = replaceFirst(doc, titleTableRe, renderTitleTable(projects))
	doc = replaceFirst(doc, gridRe, renderGrid(projects))

	return s.artifacts.WriteText(IndexArtifact, doc)
}

func (s *Synthesizer) regenerateTemplateLocked() error {
	doc, err := s.artifacts.ReadText(TemplateArtifact)
	if err != nil {
		return err
	}

	doc = replaceFirst(doc, projectMapRe, renderProjectMap(s.registry.Sorted()))

	return s.artifacts.WriteText(TemplateArtifact, doc)
}

// replaceContactLink rewrites both the mailto target and the visible
// text of the contact email anchor, keeping any extra attributes.
func replaceContactLink(doc, email string) string {
	replaced := false
	return contactLinkRe.ReplaceAllStringFunc(doc, func(match string) string {
		if replaced {
			return match
		}
		replaced = true
		attrs := contactLinkRe.FindStringSubmatch(match)[1]
		escaped := html.EscapeString(email)
		return fmt.Sprintf(`<a id="contact-email" href="mailto:%s"%s>%s</a>`, escaped, attrs, escaped)
	})
}

// PatchHeroImage points the hero section's background at url. When the
// index has no background-image declaration yet, one is appended inside
// the #hero style rule instead.
func (s *Synthesizer) PatchHeroImage(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.artifacts.ReadText(IndexArtifact)
	if err != nil {
		return err
	}

	// Only the #hero rule is touched; background declarations elsewhere
	// in the stylesheet are none of this endpoint's business.
	loc := heroBlockRe.FindStringIndex(doc)
	if loc == nil {
		return fmt.Errorf("index artifact has no hero style rule to patch")
	}
	block := doc[loc[0]:loc[1]]

	declaration := fmt.Sprintf("background-image: url('%s')", url)
	if heroImageRe.MatchString(block) {
		block = replaceFirst(block, heroImageRe, declaration)
	} else {
		open := strings.Index(block, "{")
		block = block[:open+1] + "\n      " + declaration + ";" + block[open+1:]
	}

	return s.artifacts.WriteText(IndexArtifact, doc[:loc[0]]+block+doc[loc[1]:])
}
