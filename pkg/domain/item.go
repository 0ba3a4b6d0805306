package domain

import "time"

// Item represents a single fetched post, deduplicated per tenant by link
type Item struct {
	ID          int64
	TenantID    int64
	SourceID    *int64 // nullable, items survive without source linkage
	Title       string
	Source      string // source label as reported by the fetch service
	SourceURL   string
	Link        string
	PublishDate *time.Time
	Description string
	CreatedAt   time.Time
}
