package processor

import (
	"context"
	"errors"
	"time"

	"scriptvault/internal/observability"
	"scriptvault/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidEventType = errors.New("invalid event type")
	ErrInvalidScriptID  = errors.New("invalid script id")
)

type AnalyticsProcessor struct {
	store    AnalyticsStore
	ipSecret string
	observer EventObserver
	logger   *observability.Logger
	now      func() time.Time
}

func New(store AnalyticsStore, ipSecret string, observer EventObserver, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:    store,
		ipSecret: ipSecret,
		observer: observer,
		logger:   logger,
		now:      time.Now,
	}
}

// RecordEventParams is one view or copy as reported by a visitor
type RecordEventParams struct {
	ScriptID  string
	EventType string
	ClientIP  string
	UserAgent *string
	Country   *string
}

// RecordEvent appends an analytics event. The script id is not checked
// against existing scripts.
func (p *AnalyticsProcessor) RecordEvent(ctx context.Context, params RecordEventParams) error {
	if !store.IsValidEventType(params.EventType) {
		return ErrInvalidEventType
	}
	if params.ScriptID == "" {
		return ErrInvalidScriptID
	}
	scriptID, err := uuid.Parse(params.ScriptID)
	if err != nil {
		return ErrInvalidScriptID
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "script_id", Value: scriptID.String()},
		observability.Field{Key: "event_type", Value: params.EventType},
	)

	_, err = p.store.CreateAnalyticsEvent(ctx, store.CreateAnalyticsEventParams{
		ScriptID:  scriptID,
		EventType: params.EventType,
		IPHash:    HashIP(params.ClientIP, p.ipSecret),
		UserAgent: params.UserAgent,
		Country:   params.Country,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record analytics event", err)
		return err
	}

	if p.observer != nil {
		p.observer.ObserveAnalyticsEvent(params.EventType)
	}
	return nil
}

// DashboardView is everything the admin dashboard renders
type DashboardView struct {
	Scripts   []store.Script `json:"scripts"`
	Analytics Dashboard      `json:"analytics"`
}

// GetDashboard loads every script and the newest DashboardWindow events and aggregates them
func (p *AnalyticsProcessor) GetDashboard(ctx context.Context) (DashboardView, error) {
	scripts, err := p.store.ListScripts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list scripts", err)
		return DashboardView{}, err
	}

	events, err := p.store.ListRecentAnalyticsEvents(ctx, DashboardWindow)
	if err != nil {
		p.logger.Error(ctx, "failed to list recent analytics events", err)
		return DashboardView{}, err
	}

	return DashboardView{
		Scripts:   scripts,
		Analytics: Aggregate(events, scripts, p.now()),
	}, nil
}
