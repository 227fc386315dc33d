package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"scriptvault/internal/store"

	"github.com/google/uuid"
)

// ScriptStore defines the write operations required by ScriptProcessor.
// It is backed by the service role.
type ScriptStore interface {
	CreateScript(ctx context.Context, params store.CreateScriptParams) (store.Script, error)
	UpdateScript(ctx context.Context, scriptID uuid.UUID, params store.UpdateScriptParams) (store.Script, error)
	DeleteScript(ctx context.Context, scriptID uuid.UUID) error
}

// ScriptReader defines the public read operations. It is backed by the
// least-privilege public role.
type ScriptReader interface {
	ListScripts(ctx context.Context) ([]store.Script, error)
	GetScriptBySlug(ctx context.Context, slug string) (store.Script, error)
	GetScriptEventCounts(ctx context.Context, scriptID uuid.UUID) (store.EventCounts, error)
	GetEventTotals(ctx context.Context) (store.EventCounts, error)
}

// EventPublisher announces script lifecycle changes
type EventPublisher interface {
	PublishScriptEvent(ctx context.Context, eventType string, script store.Script) error
}
