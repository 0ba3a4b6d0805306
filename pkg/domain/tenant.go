package domain

import "time"

// Tenant represents an account owning a set of sources and items
type Tenant struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Stats is a read-only aggregate over all tenants, safe to request anytime
type Stats struct {
	Tenants            int    `json:"tenants"`
	TenantsWithSources int    `json:"tenants_with_sources"`
	TotalItems         int    `json:"total_items"`
	RecentItems        int    `json:"recent_items"` // created in the last 24h
	ServiceURL         string `json:"service_url"`
	RetentionDays      int    `json:"retention_days"`
}
