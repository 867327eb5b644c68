package models

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

// Competitiveness is the closed set of selectivity labels a listing can carry.
type Competitiveness string

const (
	CompetitivenessLow        Competitiveness = "low"
	CompetitivenessLowMedium  Competitiveness = "low-medium"
	CompetitivenessMedium     Competitiveness = "medium"
	CompetitivenessMediumHigh Competitiveness = "medium-high"
	CompetitivenessHigh       Competitiveness = "high"
)

func (c Competitiveness) Valid() bool {
	switch c {
	case CompetitivenessLow, CompetitivenessLowMedium, CompetitivenessMedium,
		CompetitivenessMediumHigh, CompetitivenessHigh:
		return true
	}
	return false
}

// Funding is the closed set of funding labels.
type Funding string

const (
	FundingFree            Funding = "free"
	FundingPaid            Funding = "paid"
	FundingPartiallyFunded Funding = "partially-funded"
	FundingFullyFunded     Funding = "fully-funded"
)

func (f Funding) Valid() bool {
	switch f {
	case FundingFree, FundingPaid, FundingPartiallyFunded, FundingFullyFunded:
		return true
	}
	return false
}

// CareerArea is the closed set of career-area tags a listing can be filed under.
type CareerArea string

const (
	CareerSTEM         CareerArea = "STEM"
	CareerArts         CareerArea = "Arts"
	CareerHealthcare   CareerArea = "Healthcare"
	CareerBusiness     CareerArea = "Business"
	CareerEducation    CareerArea = "Education"
	CareerSocialImpact CareerArea = "Social Impact"
	CareerSports       CareerArea = "Sports"
)

func (a CareerArea) Valid() bool {
	switch a {
	case CareerSTEM, CareerArts, CareerHealthcare, CareerBusiness,
		CareerEducation, CareerSocialImpact, CareerSports:
		return true
	}
	return false
}

// Opportunity is one scholarship/program listing.
type Opportunity struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Organization    string          `json:"organization"`
	Description     string          `json:"description"`
	Location        string          `json:"location"`
	Country         string          `json:"country"`
	Deadline        string          `json:"deadline"` // free-text date label
	ReopenDate      *string         `json:"reopenDate"`
	DeadlineStatus  string          `json:"deadlineStatus"`
	Competitiveness Competitiveness `json:"competitiveness"`
	Funding         Funding         `json:"funding"`
	Language        []string        `json:"language"`
	Duration        string          `json:"duration"`
	AgeRange        string          `json:"ageRange"`
	CareerArea      []CareerArea    `json:"careerArea"`
	URL             string          `json:"url"`
	IsEcuador       bool            `json:"isEcuador"`
}

// InsertOpportunity is the full field set an admin submits when creating a
// listing. The identifier is server-assigned on create.
type InsertOpportunity struct {
	Title           string          `json:"title"`
	Organization    string          `json:"organization"`
	Description     string          `json:"description"`
	Location        string          `json:"location"`
	Country         string          `json:"country"`
	Deadline        string          `json:"deadline"`
	ReopenDate      *string         `json:"reopenDate"`
	DeadlineStatus  string          `json:"deadlineStatus"`
	Competitiveness Competitiveness `json:"competitiveness"`
	Funding         Funding         `json:"funding"`
	Language        []string        `json:"language"`
	Duration        string          `json:"duration"`
	AgeRange        string          `json:"ageRange"`
	CareerArea      []CareerArea    `json:"careerArea"`
	URL             string          `json:"url"`
	IsEcuador       bool            `json:"isEcuador"`
}

// Validate checks required presence and enum membership. It returns the
// names of every offending field so the caller can report them all at once.
func (in InsertOpportunity) Validate() []string {
	var bad []string

	if in.Title == "" {
		bad = append(bad, "title")
	}
	if in.Organization == "" {
		bad = append(bad, "organization")
	}
	if in.Description == "" {
		bad = append(bad, "description")
	}
	if in.Location == "" {
		bad = append(bad, "location")
	}
	if in.Country == "" {
		bad = append(bad, "country")
	}
	if in.Deadline == "" {
		bad = append(bad, "deadline")
	}
	if in.DeadlineStatus == "" {
		bad = append(bad, "deadlineStatus")
	}
	if !in.Competitiveness.Valid() {
		bad = append(bad, "competitiveness")
	}
	if !in.Funding.Valid() {
		bad = append(bad, "funding")
	}
	if len(in.Language) == 0 {
		bad = append(bad, "language")
	}
	if in.Duration == "" {
		bad = append(bad, "duration")
	}
	if in.AgeRange == "" {
		bad = append(bad, "ageRange")
	}
	if len(in.CareerArea) == 0 {
		bad = append(bad, "careerArea")
	} else {
		for _, area := range in.CareerArea {
			if !area.Valid() {
				bad = append(bad, "careerArea")
				break
			}
		}
	}
	if in.URL == "" {
		bad = append(bad, "url")
	}

	return bad
}

// Record builds the full Opportunity for a freshly assigned id.
func (in InsertOpportunity) Record(id uuid.UUID) Opportunity {
	return Opportunity{
		ID:              id,
		Title:           in.Title,
		Organization:    in.Organization,
		Description:     in.Description,
		Location:        in.Location,
		Country:         in.Country,
		Deadline:        in.Deadline,
		ReopenDate:      in.ReopenDate,
		DeadlineStatus:  in.DeadlineStatus,
		Competitiveness: in.Competitiveness,
		Funding:         in.Funding,
		Language:        in.Language,
		Duration:        in.Duration,
		AgeRange:        in.AgeRange,
		CareerArea:      in.CareerArea,
		URL:             in.URL,
		IsEcuador:       in.IsEcuador,
	}
}

// UpdateOpportunity is a partial update. Every field is a pointer so an
// omitted field is distinguishable from a field explicitly set to its zero
// value; only non-nil fields are applied. ReopenDate is doubly indirect
// because the column itself is nullable: the outer pointer says "patch this
// field", the inner one carries the new (possibly null) value.
type UpdateOpportunity struct {
	Title           *string          `json:"title"`
	Organization    *string          `json:"organization"`
	Description     *string          `json:"description"`
	Location        *string          `json:"location"`
	Country         *string          `json:"country"`
	Deadline        *string          `json:"deadline"`
	ReopenDate      **string         `json:"reopenDate"`
	DeadlineStatus  *string          `json:"deadlineStatus"`
	Competitiveness *Competitiveness `json:"competitiveness"`
	Funding         *Funding         `json:"funding"`
	Language        *[]string        `json:"language"`
	Duration        *string          `json:"duration"`
	AgeRange        *string          `json:"ageRange"`
	CareerArea      *[]CareerArea    `json:"careerArea"`
	URL             *string          `json:"url"`
	IsEcuador       *bool            `json:"isEcuador"`
}

var jsonNull = []byte("null")

// UnmarshalJSON keeps "reopenDate": null distinguishable from an absent
// reopenDate. Plain decoding would collapse both to a nil outer pointer,
// since encoding/json sets a pointer field to nil on null; presence is
// recovered from the raw key set instead.
func (up *UpdateOpportunity) UnmarshalJSON(data []byte) error {
	type plain UpdateOpportunity
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*up = UpdateOpportunity(p)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if r, ok := raw["reopenDate"]; ok && bytes.Equal(bytes.TrimSpace(r), jsonNull) {
		var null *string
		up.ReopenDate = &null
	}
	return nil
}

// Validate rejects enum values outside their closed sets. Absent fields are
// fine; this only checks the fields the patch actually carries.
func (up UpdateOpportunity) Validate() []string {
	var bad []string

	if up.Competitiveness != nil && !up.Competitiveness.Valid() {
		bad = append(bad, "competitiveness")
	}
	if up.Funding != nil && !up.Funding.Valid() {
		bad = append(bad, "funding")
	}
	if up.Language != nil && len(*up.Language) == 0 {
		bad = append(bad, "language")
	}
	if up.CareerArea != nil {
		if len(*up.CareerArea) == 0 {
			bad = append(bad, "careerArea")
		} else {
			for _, area := range *up.CareerArea {
				if !area.Valid() {
					bad = append(bad, "careerArea")
					break
				}
			}
		}
	}

	return bad
}

// Apply merges the patch into o. Fields the patch does not carry keep their
// prior values.
func (up UpdateOpportunity) Apply(o *Opportunity) {
	if up.Title != nil {
		o.Title = *up.Title
	}
	if up.Organization != nil {
		o.Organization = *up.Organization
	}
	if up.Description != nil {
		o.Description = *up.Description
	}
	if up.Location != nil {
		o.Location = *up.Location
	}
	if up.Country != nil {
		o.Country = *up.Country
	}
	if up.Deadline != nil {
		o.Deadline = *up.Deadline
	}
	if up.ReopenDate != nil {
		o.ReopenDate = *up.ReopenDate
	}
	if up.DeadlineStatus != nil {
		o.DeadlineStatus = *up.DeadlineStatus
	}
	if up.Competitiveness != nil {
		o.Competitiveness = *up.Competitiveness
	}
	if up.Funding != nil {
		o.Funding = *up.Funding
	}
	if up.Language != nil {
		o.Language = *up.Language
	}
	if up.Duration != nil {
		o.Duration = *up.Duration
	}
	if up.AgeRange != nil {
		o.AgeRange = *up.AgeRange
	}
	if up.CareerArea != nil {
		o.CareerArea = *up.CareerArea
	}
	if up.URL != nil {
		o.URL = *up.URL
	}
	if up.IsEcuador != nil {
		o.IsEcuador = *up.IsEcuador
	}
}
