// Package content owns the two pieces of process-scoped state the site
// needs besides the opportunities table: the editable site-content
// singleton and the visitor counter. Neither survives a restart; that
// matches the original site's behavior and is documented, not a defect.
package content

import (
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/insight-ec/opportunity-board/internal/models"
)

// Store holds the single SiteContent document. It is constructed once at
// process start, seeded with the built-in defaults, and only ever mutated
// through field-level patches.
type Store struct {
	mu     sync.Mutex
	doc    models.SiteContent
	policy *bluemonday.Policy
}

func NewStore() *Store {
	return &Store{
		doc: defaultSiteContent(),
		// UGC policy: markdown text passes through, embedded script/style
		// and event handlers do not.
		policy: bluemonday.UGCPolicy(),
	}
}

// Get returns the current document. It always succeeds; a default exists
// from initialization.
func (s *Store) Get() models.SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Update replaces exactly the fields the patch carries and refreshes
// LastUpdated. Concurrent patches touching disjoint fields both land;
// patches touching the same field are last-write-wins.
func (s *Store) Update(patch models.SiteContentPatch) models.SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.AboutText != nil {
		s.doc.AboutText = s.policy.Sanitize(*patch.AboutText)
	}
	if patch.QuickLinks != nil {
		s.doc.QuickLinks = *patch.QuickLinks
	}
	if patch.ResourceLinks != nil {
		s.doc.ResourceLinks = *patch.ResourceLinks
	}
	if patch.HowToApplyTitle != nil {
		s.doc.HowToApplyTitle = *patch.HowToApplyTitle
	}
	if patch.HowToApplyContent != nil {
		s.doc.HowToApplyContent = s.policy.Sanitize(*patch.HowToApplyContent)
	}
	if patch.TipsTitle != nil {
		s.doc.TipsTitle = *patch.TipsTitle
	}
	if patch.TipsContent != nil {
		s.doc.TipsContent = s.policy.Sanitize(*patch.TipsContent)
	}
	s.doc.LastUpdated = time.Now().UTC()

	return s.doc
}
