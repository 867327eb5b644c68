package storage

import (
	"context"

	"github.com/insight-ec/opportunity-board/internal/content"
	"github.com/insight-ec/opportunity-board/internal/models"
)

// OpportunityStore is the persistence contract for opportunity records.
// Implemented by the Postgres store (internal/db) and by Memory below; the
// facade never cares which one it got.
type OpportunityStore interface {
	// List returns all records. Order is unspecified; callers must not
	// assume one. An empty table yields an empty, non-nil slice.
	List(ctx context.Context) ([]models.Opportunity, error)
	// GetByID returns (nil, nil) when no record has the id. Absence is an
	// expected outcome for reads, not an error.
	GetByID(ctx context.Context, id string) (*models.Opportunity, error)
	// Create validates the input, assigns a fresh identifier, and persists
	// the full record. Returns *ValidationError on bad input.
	Create(ctx context.Context, in models.InsertOpportunity) (*models.Opportunity, error)
	// Update merges the non-nil patch fields into the stored record.
	// Returns *NotFoundError when the id does not exist.
	Update(ctx context.Context, id string, patch models.UpdateOpportunity) (*models.Opportunity, error)
	// Delete removes the record and reports whether one was actually
	// removed. A missing id is false, never an error.
	Delete(ctx context.Context, id string) (bool, error)
}

// Storage is the single seam through which all persistent and process state
// is read or mutated: opportunity records, the site-content singleton, and
// the visitor counter. Request handlers only ever see this interface.
type Storage interface {
	ListOpportunities(ctx context.Context) ([]models.Opportunity, error)
	GetOpportunity(ctx context.Context, id string) (*models.Opportunity, error)
	CreateOpportunity(ctx context.Context, in models.InsertOpportunity) (*models.Opportunity, error)
	UpdateOpportunity(ctx context.Context, id string, patch models.UpdateOpportunity) (*models.Opportunity, error)
	DeleteOpportunity(ctx context.Context, id string) (bool, error)

	GetSiteContent() models.SiteContent
	UpdateSiteContent(patch models.SiteContentPatch) models.SiteContent

	GetVisitorCount() int64
	IncrementVisitorCount() int64
}

// Store aggregates the three backing stores behind Storage. It performs no
// business logic of its own beyond delegation.
type Store struct {
	opps     OpportunityStore
	content  *content.Store
	visitors *content.VisitorCounter
}

func New(opps OpportunityStore) *Store {
	return &Store{
		opps:     opps,
		content:  content.NewStore(),
		visitors: content.NewVisitorCounter(),
	}
}

func (s *Store) ListOpportunities(ctx context.Context) ([]models.Opportunity, error) {
	return s.opps.List(ctx)
}

func (s *Store) GetOpportunity(ctx context.Context, id string) (*models.Opportunity, error) {
	return s.opps.GetByID(ctx, id)
}

func (s *Store) CreateOpportunity(ctx context.Context, in models.InsertOpportunity) (*models.Opportunity, error) {
	return s.opps.Create(ctx, in)
}

func (s *Store) UpdateOpportunity(ctx context.Context, id string, patch models.UpdateOpportunity) (*models.Opportunity, error) {
	return s.opps.Update(ctx, id, patch)
}

func (s *Store) DeleteOpportunity(ctx context.Context, id string) (bool, error) {
	return s.opps.Delete(ctx, id)
}

func (s *Store) GetSiteContent() models.SiteContent {
	return s.content.Get()
}

func (s *Store) UpdateSiteContent(patch models.SiteContentPatch) models.SiteContent {
	return s.content.Update(patch)
}

func (s *Store) GetVisitorCount() int64 {
	return s.visitors.Get()
}

func (s *Store) IncrementVisitorCount() int64 {
	return s.visitors.Increment()
}
