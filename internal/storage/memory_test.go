package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/insight-ec/opportunity-board/internal/models"
	"github.com/insight-ec/opportunity-board/internal/storage"
)

type MemoryStoreSuite struct {
	suite.Suite

	ctx   context.Context
	store *storage.Memory
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = storage.NewMemory()
}

func (s *MemoryStoreSuite) insert() models.InsertOpportunity {
	return models.InsertOpportunity{
		Title:           "Summer STEM Camp",
		Organization:    "Acme",
		Description:     "Two-week residential program.",
		Location:        "Quito",
		Country:         "Ecuador",
		Deadline:        "March 15, 2026",
		DeadlineStatus:  "open",
		Competitiveness: models.CompetitivenessMedium,
		Funding:         models.FundingFullyFunded,
		Language:        []string{"English"},
		Duration:        "2 weeks",
		AgeRange:        "15-18",
		CareerArea:      []models.CareerArea{models.CareerSTEM},
		URL:             "https://example.org/apply",
		IsEcuador:       true,
	}
}

func (s *MemoryStoreSuite) TestCreateAssignsDistinctIDs() {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		opp, err := s.store.Create(s.ctx, s.insert())
		s.Require().NoError(err)
		s.Require().False(seen[opp.ID.String()], "identifier %s issued twice", opp.ID)
		seen[opp.ID.String()] = true
	}
}

func (s *MemoryStoreSuite) TestCreateListAndEcuadorFlag() {
	opp, err := s.store.Create(s.ctx, s.insert())
	s.Require().NoError(err)
	s.True(opp.IsEcuador)
	s.NotEmpty(opp.ID)

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(opp.ID, all[0].ID)

	var ecuador []models.Opportunity
	for _, o := range all {
		if o.IsEcuador {
			ecuador = append(ecuador, o)
		}
	}
	s.Len(ecuador, 1)
}

func (s *MemoryStoreSuite) TestCreateRejectsBadEnum() {
	in := s.insert()
	in.Competitiveness = "impossible"

	_, err := s.store.Create(s.ctx, in)
	s.Require().Error(err)

	var ve *storage.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Contains(ve.Fields, "competitiveness")
}

func (s *MemoryStoreSuite) TestGetAbsentIsNotAnError() {
	opp, err := s.store.GetByID(s.ctx, "2b41b04a-0000-4000-8000-000000000000")
	s.NoError(err)
	s.Nil(opp)

	opp, err = s.store.GetByID(s.ctx, "not-even-a-uuid")
	s.NoError(err)
	s.Nil(opp)
}

func (s *MemoryStoreSuite) TestUpdateIsPartialMerge() {
	created, err := s.store.Create(s.ctx, s.insert())
	s.Require().NoError(err)

	newTitle := "Updated Camp"
	updated, err := s.store.Update(s.ctx, created.ID.String(), models.UpdateOpportunity{Title: &newTitle})
	s.Require().NoError(err)

	s.Equal(newTitle, updated.Title)
	s.Equal(created.Organization, updated.Organization)
	s.Equal(created.Funding, updated.Funding)
	s.Equal(created.Language, updated.Language)
	s.Equal(created.IsEcuador, updated.IsEcuador)

	// the merge persisted, not just the returned copy
	got, err := s.store.GetByID(s.ctx, created.ID.String())
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(newTitle, got.Title)
}

func (s *MemoryStoreSuite) TestUpdateMissingIDIsNotFound() {
	title := "X"
	_, err := s.store.Update(s.ctx, "nonexistent-id", models.UpdateOpportunity{Title: &title})
	s.Require().Error(err)

	var nfe *storage.NotFoundError
	s.Require().ErrorAs(err, &nfe)
	s.Equal("nonexistent-id", nfe.ID)
}

func (s *MemoryStoreSuite) TestDeleteTwiceReturnsTrueThenFalse() {
	created, err := s.store.Create(s.ctx, s.insert())
	s.Require().NoError(err)

	deleted, err := s.store.Delete(s.ctx, created.ID.String())
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.store.Delete(s.ctx, created.ID.String())
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *MemoryStoreSuite) TestListEmptyIsEmptySliceNotNil() {
	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.NotNil(all)
	s.Empty(all)
}

func (s *MemoryStoreSuite) TestFacadeDelegates() {
	facade := storage.New(s.store)

	opp, err := facade.CreateOpportunity(s.ctx, s.insert())
	s.Require().NoError(err)

	got, err := facade.GetOpportunity(s.ctx, opp.ID.String())
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(opp.Title, got.Title)

	s.Equal(int64(1), facade.IncrementVisitorCount())
	s.Equal(int64(1), facade.GetVisitorCount())

	doc := facade.GetSiteContent()
	s.NotEmpty(doc.AboutText)
}
