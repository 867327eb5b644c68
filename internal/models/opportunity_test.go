package models

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func validInsert() InsertOpportunity {
	return InsertOpportunity{
		Title:           "Summer STEM Camp",
		Organization:    "Acme",
		Description:     "Two-week residential program.",
		Location:        "Quito",
		Country:         "Ecuador",
		Deadline:        "March 15, 2026",
		DeadlineStatus:  "open",
		Competitiveness: CompetitivenessMedium,
		Funding:         FundingFullyFunded,
		Language:        []string{"English"},
		Duration:        "2 weeks",
		AgeRange:        "15-18",
		CareerArea:      []CareerArea{CareerSTEM},
		URL:             "https://example.org/apply",
		IsEcuador:       true,
	}
}

func TestInsertValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*InsertOpportunity)
		badFields []string
	}{
		{
			name:   "valid submission passes",
			mutate: func(in *InsertOpportunity) {},
		},
		{
			name:      "missing title",
			mutate:    func(in *InsertOpportunity) { in.Title = "" },
			badFields: []string{"title"},
		},
		{
			name:      "competitiveness outside enum",
			mutate:    func(in *InsertOpportunity) { in.Competitiveness = "impossible" },
			badFields: []string{"competitiveness"},
		},
		{
			name:      "funding outside enum",
			mutate:    func(in *InsertOpportunity) { in.Funding = "sponsored" },
			badFields: []string{"funding"},
		},
		{
			name:      "empty language list",
			mutate:    func(in *InsertOpportunity) { in.Language = nil },
			badFields: []string{"language"},
		},
		{
			name:      "unknown career area",
			mutate:    func(in *InsertOpportunity) { in.CareerArea = []CareerArea{"Gaming"} },
			badFields: []string{"careerArea"},
		},
		{
			name: "multiple offenders all named",
			mutate: func(in *InsertOpportunity) {
				in.Organization = ""
				in.URL = ""
			},
			badFields: []string{"organization", "url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInsert()
			tt.mutate(&in)
			got := in.Validate()
			if !reflect.DeepEqual(got, tt.badFields) {
				t.Fatalf("Validate() = %v, want %v", got, tt.badFields)
			}
		})
	}
}

func TestReopenDateIsOptional(t *testing.T) {
	in := validInsert()
	in.ReopenDate = nil
	if bad := in.Validate(); bad != nil {
		t.Fatalf("nil reopenDate should validate, got %v", bad)
	}
}

func TestUpdateApplyIsPartialMerge(t *testing.T) {
	base := validInsert().Record(uuid.New())

	newTitle := "Winter STEM Camp"
	newFunding := FundingPartiallyFunded
	patch := UpdateOpportunity{
		Title:   &newTitle,
		Funding: &newFunding,
	}

	got := base
	patch.Apply(&got)

	if got.Title != newTitle {
		t.Errorf("title not applied: %q", got.Title)
	}
	if got.Funding != newFunding {
		t.Errorf("funding not applied: %q", got.Funding)
	}

	// everything else byte-for-byte untouched
	want := base
	want.Title = newTitle
	want.Funding = newFunding
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("patch touched fields it should not have:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestUpdateApplyCanClearReopenDate(t *testing.T) {
	reopen := "January 2027"
	base := validInsert()
	base.ReopenDate = &reopen
	o := base.Record(uuid.New())

	var null *string
	patch := UpdateOpportunity{ReopenDate: &null}
	patch.Apply(&o)

	if o.ReopenDate != nil {
		t.Fatalf("reopenDate should be cleared, got %q", *o.ReopenDate)
	}
}

func TestUpdateDecodeDistinguishesNullFromAbsent(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		carried bool    // outer pointer set
		value   *string // inner value when carried
	}{
		{
			name:    "omitted means keep",
			body:    `{"title":"X"}`,
			carried: false,
		},
		{
			name:    "null means clear",
			body:    `{"reopenDate":null}`,
			carried: true,
			value:   nil,
		},
		{
			name:    "string means replace",
			body:    `{"reopenDate":"January 2027"}`,
			carried: true,
			value:   strPtr("January 2027"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch UpdateOpportunity
			if err := json.Unmarshal([]byte(tt.body), &patch); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}

			if !tt.carried {
				if patch.ReopenDate != nil {
					t.Fatalf("omitted reopenDate decoded as carried: %#v", patch.ReopenDate)
				}
				return
			}

			if patch.ReopenDate == nil {
				t.Fatal("carried reopenDate decoded as omitted")
			}
			inner := *patch.ReopenDate
			if tt.value == nil {
				if inner != nil {
					t.Fatalf("null should decode to nil inner value, got %q", *inner)
				}
			} else if inner == nil || *inner != *tt.value {
				t.Fatalf("inner value = %v, want %q", inner, *tt.value)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateValidateChecksOnlyCarriedFields(t *testing.T) {
	bad := Competitiveness("impossible")
	patch := UpdateOpportunity{Competitiveness: &bad}
	if got := patch.Validate(); !reflect.DeepEqual(got, []string{"competitiveness"}) {
		t.Fatalf("Validate() = %v, want [competitiveness]", got)
	}

	empty := UpdateOpportunity{}
	if got := empty.Validate(); got != nil {
		t.Fatalf("empty patch should validate, got %v", got)
	}
}

func TestEnumSets(t *testing.T) {
	for _, c := range []Competitiveness{CompetitivenessLow, CompetitivenessLowMedium, CompetitivenessMedium, CompetitivenessMediumHigh, CompetitivenessHigh} {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	if Competitiveness("medium-low").Valid() {
		t.Error("medium-low is not in the set")
	}

	for _, f := range []Funding{FundingFree, FundingPaid, FundingPartiallyFunded, FundingFullyFunded} {
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if Funding("funded").Valid() {
		t.Error("funded is not in the set")
	}

	for _, a := range []CareerArea{CareerSTEM, CareerArts, CareerHealthcare, CareerBusiness, CareerEducation, CareerSocialImpact, CareerSports} {
		if !a.Valid() {
			t.Errorf("%q should be valid", a)
		}
	}
	if CareerArea("stem").Valid() {
		t.Error("career areas are case-sensitive")
	}
}
