package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateAnalyticsEventParams represents parameters for recording an event
type CreateAnalyticsEventParams struct {
	ScriptID  uuid.UUID
	EventType string
	IPHash    string
	UserAgent *string
	Country   *string
}

const sqlCreateAnalyticsEvent = `
INSERT INTO analytics (script_id, event_type, ip_hash, user_agent, country)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, script_id, event_type, ip_hash, user_agent, country, created_at
`

// CreateAnalyticsEvent appends one analytics row
func (s *Store) CreateAnalyticsEvent(ctx context.Context, params CreateAnalyticsEventParams) (AnalyticsEvent, error) {
	var event AnalyticsEvent
	err := s.db.GetContext(ctx, &event, sqlCreateAnalyticsEvent,
		params.ScriptID,
		params.EventType,
		params.IPHash,
		params.UserAgent,
		params.Country,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to create analytics event", err)
		return AnalyticsEvent{}, fmt.Errorf("failed to create analytics event: %w", err)
	}
	return event, nil
}

const sqlListRecentAnalyticsEvents = `
SELECT id, script_id, event_type, country, created_at
FROM analytics
ORDER BY created_at DESC
LIMIT $1
`

// ListRecentAnalyticsEvents returns up to limit events, newest first.
// ip_hash and user_agent are not loaded.
func (s *Store) ListRecentAnalyticsEvents(ctx context.Context, limit int) ([]AnalyticsEvent, error) {
	events := []AnalyticsEvent{}
	err := s.db.SelectContext(ctx, &events, sqlListRecentAnalyticsEvents, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list recent analytics events", err)
		return nil, fmt.Errorf("failed to list recent analytics events: %w", err)
	}
	return events, nil
}

const sqlGetScriptEventCounts = `
SELECT
    COUNT(*) FILTER (WHERE event_type = 'view')::int AS views,
    COUNT(*) FILTER (WHERE event_type = 'copy')::int AS copies
FROM analytics
WHERE script_id = $1
`

// GetScriptEventCounts returns all-time view and copy counts for one script
func (s *Store) GetScriptEventCounts(ctx context.Context, scriptID uuid.UUID) (EventCounts, error) {
	var counts EventCounts
	err := s.db.GetContext(ctx, &counts, sqlGetScriptEventCounts, scriptID)
	if err != nil {
		s.logger.Error(ctx, "failed to get script event counts", err)
		return EventCounts{}, fmt.Errorf("failed to get script event counts: %w", err)
	}
	return counts, nil
}

const sqlGetEventTotals = `
SELECT
    COUNT(*) FILTER (WHERE event_type = 'view')::int AS views,
    COUNT(*) FILTER (WHERE event_type = 'copy')::int AS copies
FROM analytics
`

// GetEventTotals returns all-time view and copy counts across every script
func (s *Store) GetEventTotals(ctx context.Context) (EventCounts, error) {
	var counts EventCounts
	err := s.db.GetContext(ctx, &counts, sqlGetEventTotals)
	if err != nil {
		s.logger.Error(ctx, "failed to get event totals", err)
		return EventCounts{}, fmt.Errorf("failed to get event totals: %w", err)
	}
	return counts, nil
}
