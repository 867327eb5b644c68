package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/insight-ec/opportunity-board/internal/models"
	"github.com/insight-ec/opportunity-board/internal/storage"
)

// Store is the Postgres-backed opportunity record store. Every call is a
// direct round trip; there is no caching layer in between.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// selectCols is the full column list shared by every read.
const selectCols = `id, title, organization, description, location, country,
	deadline, reopen_date, deadline_status, competitiveness, funding,
	language, duration, age_range, career_area, url, is_ecuador`

func scanOpportunity(scan func(dest ...any) error) (models.Opportunity, error) {
	var o models.Opportunity
	var competitiveness, funding string
	var careerArea []string

	err := scan(
		&o.ID, &o.Title, &o.Organization, &o.Description, &o.Location, &o.Country,
		&o.Deadline, &o.ReopenDate, &o.DeadlineStatus, &competitiveness, &funding,
		&o.Language, &o.Duration, &o.AgeRange, &careerArea, &o.URL, &o.IsEcuador,
	)
	if err != nil {
		return o, err
	}

	o.Competitiveness = models.Competitiveness(competitiveness)
	o.Funding = models.Funding(funding)
	o.CareerArea = toCareerAreas(careerArea)

	return o, nil
}

func toCareerAreas(values []string) []models.CareerArea {
	out := make([]models.CareerArea, len(values))
	for i, v := range values {
		out[i] = models.CareerArea(v)
	}
	return out
}

func fromCareerAreas(values []models.CareerArea) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// List returns every record. Order is unspecified.
func (s *Store) List(ctx context.Context) ([]models.Opportunity, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf("SELECT %s FROM opportunities", selectCols))
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var opps []models.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		opps = append(opps, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	if opps == nil {
		opps = []models.Opportunity{}
	}
	return opps, nil
}

// GetByID returns (nil, nil) when the id is absent or not a UUID at all.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Opportunity, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	row := s.pool.QueryRow(ctx, fmt.Sprintf("SELECT %s FROM opportunities WHERE id = $1", selectCols), key)
	o, err := scanOpportunity(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get failed: %w", err)
	}

	return &o, nil
}

// Create validates the submission, assigns a fresh id, and persists the
// full record.
func (s *Store) Create(ctx context.Context, in models.InsertOpportunity) (*models.Opportunity, error) {
	if bad := in.Validate(); len(bad) > 0 {
		return nil, &storage.ValidationError{Fields: bad}
	}

	o := in.Record(uuid.New())

	_, err := s.pool.Exec(ctx, `
		INSERT INTO opportunities (
			id, title, organization, description, location, country,
			deadline, reopen_date, deadline_status, competitiveness, funding,
			language, duration, age_range, career_area, url, is_ecuador
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`,
		o.ID, o.Title, o.Organization, o.Description, o.Location, o.Country,
		o.Deadline, o.ReopenDate, o.DeadlineStatus, string(o.Competitiveness), string(o.Funding),
		o.Language, o.Duration, o.AgeRange, fromCareerAreas(o.CareerArea), o.URL, o.IsEcuador,
	)
	if err != nil {
		return nil, fmt.Errorf("insert failed: %w", err)
	}

	return &o, nil
}

// buildUpdateSet turns the non-nil patch fields into a SET clause and its
// positional arguments. An empty clause means the patch carried nothing.
func buildUpdateSet(patch models.UpdateOpportunity) (string, []any) {
	var set string
	var args []any

	add := func(col string, val any) {
		if set != "" {
			set += ", "
		}
		args = append(args, val)
		set += fmt.Sprintf("%s = $%d", col, len(args))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Organization != nil {
		add("organization", *patch.Organization)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Country != nil {
		add("country", *patch.Country)
	}
	if patch.Deadline != nil {
		add("deadline", *patch.Deadline)
	}
	if patch.ReopenDate != nil {
		// inner pointer may be nil, which writes NULL
		add("reopen_date", *patch.ReopenDate)
	}
	if patch.DeadlineStatus != nil {
		add("deadline_status", *patch.DeadlineStatus)
	}
	if patch.Competitiveness != nil {
		add("competitiveness", string(*patch.Competitiveness))
	}
	if patch.Funding != nil {
		add("funding", string(*patch.Funding))
	}
	if patch.Language != nil {
		add("language", *patch.Language)
	}
	if patch.Duration != nil {
		add("duration", *patch.Duration)
	}
	if patch.AgeRange != nil {
		add("age_range", *patch.AgeRange)
	}
	if patch.CareerArea != nil {
		add("career_area", fromCareerAreas(*patch.CareerArea))
	}
	if patch.URL != nil {
		add("url", *patch.URL)
	}
	if patch.IsEcuador != nil {
		add("is_ecuador", *patch.IsEcuador)
	}

	return set, args
}

// Update merges the supplied fields into the stored record and returns the
// result. A missing id is *storage.NotFoundError.
func (s *Store) Update(ctx context.Context, id string, patch models.UpdateOpportunity) (*models.Opportunity, error) {
	if bad := patch.Validate(); len(bad) > 0 {
		return nil, &storage.ValidationError{Fields: bad}
	}

	key, err := uuid.Parse(id)
	if err != nil {
		return nil, &storage.NotFoundError{ID: id}
	}

	set, args := buildUpdateSet(patch)
	if set == "" {
		// Empty patch: nothing to write, but the caller still expects the
		// record back (or not-found).
		o, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if o == nil {
			return nil, &storage.NotFoundError{ID: id}
		}
		return o, nil
	}

	args = append(args, key)
	sql := fmt.Sprintf("UPDATE opportunities SET %s WHERE id = $%d RETURNING %s", set, len(args), selectCols)

	row := s.pool.QueryRow(ctx, sql, args...)
	o, err := scanOpportunity(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &storage.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}

	return &o, nil
}

// Delete removes the record and reports whether anything was deleted.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	tag, err := s.pool.Exec(ctx, "DELETE FROM opportunities WHERE id = $1", key)
	if err != nil {
		return false, fmt.Errorf("delete failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
