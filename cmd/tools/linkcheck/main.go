package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/insight-ec/opportunity-board/internal/db"
)

// linkcheck fetches every listing's application URL and reports dead links
// so stale listings can be cleaned up from the admin dashboard.

type checkResult struct {
	Title      string
	URL        string
	StatusCode int
	PageTitle  string
	Err        string
}

func main() {
	ctx := context.Background()
	pool, err := db.Connect(ctx, "")
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	store := db.NewStore(pool)
	opps, err := store.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list opportunities: %v", err)
	}

	collector := colly.NewCollector(
		colly.UserAgent("insight-linkcheck/1.0"),
		colly.MaxBodySize(2*1024*1024),
		colly.AllowURLRevisit(),
	)
	collector.SetRequestTimeout(15 * time.Second)
	if err := collector.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Delay:       1 * time.Second,
		RandomDelay: 500 * time.Millisecond,
	}); err != nil {
		log.Fatalf("Failed to configure rate limit: %v", err)
	}

	results := make(map[string]*checkResult, len(opps))

	collector.OnResponse(func(r *colly.Response) {
		res, ok := results[r.Request.URL.String()]
		if !ok {
			return
		}
		res.StatusCode = r.StatusCode

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(r.Body)))
		if err != nil {
			return
		}
		res.PageTitle = strings.TrimSpace(doc.Find("title").First().Text())
	})

	collector.OnError(func(r *colly.Response, err error) {
		res, ok := results[r.Request.URL.String()]
		if !ok {
			return
		}
		res.StatusCode = r.StatusCode
		res.Err = err.Error()
	})

	for _, opp := range opps {
		if _, seen := results[opp.URL]; seen {
			continue
		}
		results[opp.URL] = &checkResult{Title: opp.Title, URL: opp.URL}
		if err := collector.Visit(opp.URL); err != nil {
			results[opp.URL].Err = err.Error()
		}
	}
	collector.Wait()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Listing", "Status", "Page Title", "Error"})

	dead := 0
	for _, res := range results {
		status := "OK"
		if res.Err != "" || res.StatusCode >= 400 || res.StatusCode == 0 {
			status = "DEAD"
			dead++
		}
		pageTitle := res.PageTitle
		if len(pageTitle) > 60 {
			pageTitle = pageTitle[:57] + "..."
		}
		t.AppendRow(table.Row{res.Title, status, pageTitle, res.Err})
	}
	t.Render()

	log.Printf("Checked %d URLs, %d dead", len(results), dead)
}
