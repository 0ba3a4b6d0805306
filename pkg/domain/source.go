package domain

import "time"

// health policy thresholds for a source
const (
	// CooldownFailures is the consecutive failure count that puts a source into cooldown
	CooldownFailures = 3
	// DisableFailures is the consecutive failure count that permanently disables a source
	DisableFailures = 10
	// CooldownPeriod is how long a source stays in cooldown after its last failure
	CooldownPeriod = 24 * time.Hour
)

// SourceStatus is the derived health state of a source
type SourceStatus string

// source status values, derived from the stored health fields
const (
	StatusActive   SourceStatus = "active"
	StatusCooldown SourceStatus = "cooldown"
	StatusDisabled SourceStatus = "disabled"
)

// Source represents a subscribed feed endpoint owned by a tenant
type Source struct {
	ID                  int64
	TenantID            int64
	URL                 string
	ConsecutiveFailures int
	LastFailureAt       *time.Time
	DisabledAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RecordSuccess resets the failure counter after a successful fetch.
// It deliberately does not clear DisabledAt, a disabled source is only
// brought back by an explicit ReEnable.
func (s *Source) RecordSuccess() {
	s.ConsecutiveFailures = 0
	s.LastFailureAt = nil
}

// RecordFailure increments the failure counter and stamps the failure time.
// Reaching DisableFailures consecutive failures disables the source permanently.
func (s *Source) RecordFailure(now time.Time) {
	s.ConsecutiveFailures++
	s.LastFailureAt = &now
	if s.ConsecutiveFailures >= DisableFailures {
		s.DisabledAt = &now
	}
}

// ReEnable clears all health state, bringing a disabled source back to active.
// Calling it on a source that is not disabled is harmless.
func (s *Source) ReEnable() {
	s.ConsecutiveFailures = 0
	s.LastFailureAt = nil
	s.DisabledAt = nil
}

// Status derives the health state from the stored fields
func (s *Source) Status(now time.Time) SourceStatus {
	if s.DisabledAt != nil || s.ConsecutiveFailures >= DisableFailures {
		return StatusDisabled
	}
	if s.ConsecutiveFailures >= CooldownFailures && s.LastFailureAt != nil &&
		s.LastFailureAt.After(now.Add(-CooldownPeriod)) {
		return StatusCooldown
	}
	// failures >= CooldownFailures with no failure timestamp counts as active,
	// favoring a retry over wrongly blocking the source
	return StatusActive
}

// Eligible reports whether the source should be included in the next fetch.
// Disabled sources are never eligible, sources in cooldown become eligible
// again once CooldownPeriod has elapsed since the last failure.
func (s *Source) Eligible(now time.Time) bool {
	if s.DisabledAt != nil {
		return false
	}
	if s.ConsecutiveFailures >= CooldownFailures && s.LastFailureAt != nil {
		if s.ConsecutiveFailures >= DisableFailures {
			return false
		}
		if !s.LastFailureAt.Before(now.Add(-CooldownPeriod)) {
			return false
		}
	}
	return true
}

// SelectEligible filters sources down to those eligible for fetching now,
// preserving input order
func SelectEligible(sources []Source, now time.Time) []Source {
	eligible := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s.Eligible(now) {
			eligible = append(eligible, s)
		}
	}
	return eligible
}
