package content

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/insight-ec/opportunity-board/internal/models"
)

func TestDefaultsArePopulated(t *testing.T) {
	doc := NewStore().Get()

	if doc.AboutText == "" {
		t.Error("aboutText default is empty")
	}
	if len(doc.QuickLinks) != 3 {
		t.Errorf("expected 3 default quick links, got %d", len(doc.QuickLinks))
	}
	if len(doc.ResourceLinks) != 2 {
		t.Errorf("expected 2 default resource links, got %d", len(doc.ResourceLinks))
	}
	if doc.HowToApplyTitle == "" || doc.HowToApplyContent == "" {
		t.Error("how-to-apply page defaults are empty")
	}
	if doc.TipsTitle == "" || doc.TipsContent == "" {
		t.Error("tips page defaults are empty")
	}
	if doc.LastUpdated.IsZero() {
		t.Error("lastUpdated not initialized")
	}

	if !strings.HasPrefix(doc.QuickLinks[0].URL, "/") {
		t.Errorf("first quick link should be an internal path, got %q", doc.QuickLinks[0].URL)
	}
}

func TestPatchPreservesUntouchedFields(t *testing.T) {
	store := NewStore()
	before := store.Get()

	about := "New about text"
	after := store.Update(models.SiteContentPatch{AboutText: &about})

	if after.AboutText != about {
		t.Errorf("aboutText = %q, want %q", after.AboutText, about)
	}
	if !after.LastUpdated.After(before.LastUpdated) && !after.LastUpdated.Equal(before.LastUpdated) {
		t.Error("lastUpdated went backwards")
	}

	if !reflect.DeepEqual(after.QuickLinks, before.QuickLinks) {
		t.Error("quickLinks changed by an aboutText patch")
	}
	if !reflect.DeepEqual(after.ResourceLinks, before.ResourceLinks) {
		t.Error("resourceLinks changed by an aboutText patch")
	}
	if after.HowToApplyContent != before.HowToApplyContent {
		t.Error("howToApplyContent changed by an aboutText patch")
	}
	if after.TipsContent != before.TipsContent {
		t.Error("tipsContent changed by an aboutText patch")
	}
}

func TestPatchCanEmptyALinkList(t *testing.T) {
	store := NewStore()
	before := store.Get()

	empty := []models.QuickLink{}
	store.Update(models.SiteContentPatch{QuickLinks: &empty})

	after := store.Get()
	if len(after.QuickLinks) != 0 {
		t.Errorf("quickLinks should be empty, got %d entries", len(after.QuickLinks))
	}
	if !reflect.DeepEqual(after.ResourceLinks, before.ResourceLinks) {
		t.Error("resourceLinks changed")
	}
	if after.AboutText != before.AboutText {
		t.Error("aboutText changed")
	}
}

func TestPatchStripsUnsafeHTML(t *testing.T) {
	store := NewStore()

	body := "## Heading\n\nSome text<script>alert(1)</script> more text"
	store.Update(models.SiteContentPatch{TipsContent: &body})

	got := store.Get().TipsContent
	if strings.Contains(got, "<script") {
		t.Fatalf("script tag survived sanitization: %q", got)
	}
	if !strings.Contains(got, "## Heading") {
		t.Errorf("markdown text should pass through, got %q", got)
	}
}

func TestConcurrentDisjointPatchesBothLand(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			about := "about"
			store.Update(models.SiteContentPatch{AboutText: &about})
		}()
		go func() {
			defer wg.Done()
			title := "title"
			store.Update(models.SiteContentPatch{TipsTitle: &title})
		}()
	}
	wg.Wait()

	doc := store.Get()
	if doc.AboutText != "about" {
		t.Errorf("aboutText lost: %q", doc.AboutText)
	}
	if doc.TipsTitle != "title" {
		t.Errorf("tipsTitle lost: %q", doc.TipsTitle)
	}
}
