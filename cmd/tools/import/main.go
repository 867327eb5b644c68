package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/insight-ec/opportunity-board/internal/db"
	"github.com/insight-ec/opportunity-board/internal/models"
)

// seedFile is the YAML shape of a listings file, e.g.:
//
//	opportunities:
//	  - title: Summer STEM Camp
//	    organization: Acme
//	    ...
//	    language: [English]
//	    career_area: [STEM]
//	    is_ecuador: true
type seedFile struct {
	Opportunities []seedOpportunity `yaml:"opportunities"`
}

type seedOpportunity struct {
	Title           string   `yaml:"title"`
	Organization    string   `yaml:"organization"`
	Description     string   `yaml:"description"`
	Location        string   `yaml:"location"`
	Country         string   `yaml:"country"`
	Deadline        string   `yaml:"deadline"`
	ReopenDate      *string  `yaml:"reopen_date"`
	DeadlineStatus  string   `yaml:"deadline_status"`
	Competitiveness string   `yaml:"competitiveness"`
	Funding         string   `yaml:"funding"`
	Language        []string `yaml:"language"`
	Duration        string   `yaml:"duration"`
	AgeRange        string   `yaml:"age_range"`
	CareerArea      []string `yaml:"career_area"`
	URL             string   `yaml:"url"`
	IsEcuador       bool     `yaml:"is_ecuador"`
}

func (s seedOpportunity) insert() models.InsertOpportunity {
	areas := make([]models.CareerArea, len(s.CareerArea))
	for i, a := range s.CareerArea {
		areas[i] = models.CareerArea(a)
	}

	return models.InsertOpportunity{
		Title:           s.Title,
		Organization:    s.Organization,
		Description:     s.Description,
		Location:        s.Location,
		Country:         s.Country,
		Deadline:        s.Deadline,
		ReopenDate:      s.ReopenDate,
		DeadlineStatus:  s.DeadlineStatus,
		Competitiveness: models.Competitiveness(s.Competitiveness),
		Funding:         models.Funding(s.Funding),
		Language:        s.Language,
		Duration:        s.Duration,
		AgeRange:        s.AgeRange,
		CareerArea:      areas,
		URL:             s.URL,
		IsEcuador:       s.IsEcuador,
	}
}

func main() {
	file := flag.String("file", "", "Path to YAML listings file")
	flag.Parse()

	if *file == "" {
		log.Fatal("Please provide a listings file using -file flag")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	var seeds seedFile
	if err := yaml.Unmarshal(raw, &seeds); err != nil {
		log.Fatalf("Failed to parse %s: %v", *file, err)
	}
	if len(seeds.Opportunities) == 0 {
		log.Fatalf("No opportunities found in %s", *file)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, "")
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	store := db.NewStore(pool)

	created, failed := 0, 0
	for _, seed := range seeds.Opportunities {
		opp, err := store.Create(ctx, seed.insert())
		if err != nil {
			log.Printf("Skipping %q: %v", seed.Title, err)
			failed++
			continue
		}
		log.Printf("Created %q (%s)", opp.Title, opp.ID)
		created++
	}

	log.Printf("Import finished. Created: %d, Failed: %d", created, failed)
}
