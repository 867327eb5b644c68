package models

import "time"

// QuickLink is one entry in a footer link list. IDs are client-assigned and
// only need to be unique within their own list.
type QuickLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"` // internal path ("/...") or absolute URL/mailto
}

// SiteContent is the singleton document of editable site text: footer about
// blurb, the two footer link lists, and the two static pages (markdown).
// Exactly one instance exists for the lifetime of the process.
type SiteContent struct {
	AboutText         string      `json:"aboutText"`
	QuickLinks        []QuickLink `json:"quickLinks"`
	ResourceLinks     []QuickLink `json:"resourceLinks"`
	HowToApplyTitle   string      `json:"howToApplyTitle"`
	HowToApplyContent string      `json:"howToApplyContent"`
	TipsTitle         string      `json:"tipsTitle"`
	TipsContent       string      `json:"tipsContent"`
	LastUpdated       time.Time   `json:"lastUpdated"`
}

// SiteContentPatch carries the subset of editable fields to replace. Nil
// means "leave untouched"; a non-nil empty slice really does empty the list.
type SiteContentPatch struct {
	AboutText         *string      `json:"aboutText"`
	QuickLinks        *[]QuickLink `json:"quickLinks"`
	ResourceLinks     *[]QuickLink `json:"resourceLinks"`
	HowToApplyTitle   *string      `json:"howToApplyTitle"`
	HowToApplyContent *string      `json:"howToApplyContent"`
	TipsTitle         *string      `json:"tipsTitle"`
	TipsContent       *string      `json:"tipsContent"`
}
