package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"scriptvault/internal/store"
)

// AnalyticsStore defines the database operations required by AnalyticsProcessor
type AnalyticsStore interface {
	CreateAnalyticsEvent(ctx context.Context, params store.CreateAnalyticsEventParams) (store.AnalyticsEvent, error)
	ListRecentAnalyticsEvents(ctx context.Context, limit int) ([]store.AnalyticsEvent, error)
	ListScripts(ctx context.Context) ([]store.Script, error)
}

// EventObserver counts recorded events
type EventObserver interface {
	ObserveAnalyticsEvent(eventType string)
}
