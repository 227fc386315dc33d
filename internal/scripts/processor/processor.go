package processor

import (
	"context"
	"errors"
	"strings"

	"scriptvault/internal/events"
	"scriptvault/internal/observability"
	"scriptvault/internal/scripts/utils"
	"scriptvault/internal/store"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("script content is required")
	ErrInvalidScriptID = errors.New("invalid script id")
	ErrScriptNotFound  = errors.New("script not found")
	ErrSlugExhausted   = errors.New("could not allocate a unique slug")
)

// maxSlugAttempts bounds slug regeneration after a uniqueness violation
const maxSlugAttempts = 3

type ScriptProcessor struct {
	store     ScriptStore
	reader    ScriptReader
	publisher EventPublisher
	logger    *observability.Logger
}

func New(store ScriptStore, reader ScriptReader, publisher EventPublisher, logger *observability.Logger) ScriptProcessor {
	return ScriptProcessor{
		store:     store,
		reader:    reader,
		publisher: publisher,
		logger:    logger,
	}
}

// ScriptFields are the admin-editable fields of a script
type ScriptFields struct {
	Title              string
	Description        *string
	ScriptContent      string
	GameName           *string
	GameLink           *string
	BackgroundImageURL *string
}

// ScriptWithCounts is a script together with its all-time view and copy counts
type ScriptWithCounts struct {
	Script store.Script      `json:"script"`
	Counts store.EventCounts `json:"counts"`
}

// ScriptListing is the public listing with global event totals
type ScriptListing struct {
	Scripts []store.Script    `json:"scripts"`
	Totals  store.EventCounts `json:"totals"`
}

// normalize trims the fields and turns blank optional fields into nil
func (f ScriptFields) normalize() (ScriptFields, error) {
	out := ScriptFields{
		Title:              strings.TrimSpace(f.Title),
		ScriptContent:      f.ScriptContent,
		Description:        blankToNil(f.Description),
		GameName:           blankToNil(f.GameName),
		GameLink:           blankToNil(f.GameLink),
		BackgroundImageURL: blankToNil(f.BackgroundImageURL),
	}
	if out.Title == "" {
		return ScriptFields{}, ErrTitleRequired
	}
	if strings.TrimSpace(out.ScriptContent) == "" {
		return ScriptFields{}, ErrContentRequired
	}
	return out, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// CreateScript validates the fields, assigns a fresh slug and stores the script.
// A slug collision regenerates the slug, up to maxSlugAttempts times.
func (p *ScriptProcessor) CreateScript(ctx context.Context, fields ScriptFields) (store.Script, error) {
	fields, err := fields.normalize()
	if err != nil {
		return store.Script{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "script_title", Value: fields.Title})

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		slug, err := utils.GenerateSlug(fields.Title)
		if err != nil {
			p.logger.Error(ctx, "failed to generate slug", err)
			return store.Script{}, err
		}

		script, err := p.store.CreateScript(ctx, store.CreateScriptParams{
			Slug:               slug,
			Title:              fields.Title,
			Description:        fields.Description,
			ScriptContent:      fields.ScriptContent,
			GameName:           fields.GameName,
			GameLink:           fields.GameLink,
			BackgroundImageURL: fields.BackgroundImageURL,
		})
		if errors.Is(err, store.ErrSlugConflict) {
			p.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "slug", Value: slug},
				observability.Field{Key: "attempt", Value: attempt},
			), "slug already taken, regenerating")
			continue
		}
		if err != nil {
			p.logger.Error(ctx, "failed to create script", err)
			return store.Script{}, err
		}

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "script_id", Value: script.ID.String()},
			observability.Field{Key: "slug", Value: script.Slug},
		)
		p.logger.Info(ctx, "script created successfully")
		p.publish(ctx, events.ScriptCreated, script)
		return script, nil
	}

	p.logger.Error(ctx, "exhausted slug attempts", ErrSlugExhausted)
	return store.Script{}, ErrSlugExhausted
}

// UpdateScript overwrites the editable fields of the script with the given id
func (p *ScriptProcessor) UpdateScript(ctx context.Context, id string, fields ScriptFields) (store.Script, error) {
	scriptID, err := uuid.Parse(id)
	if err != nil {
		return store.Script{}, ErrInvalidScriptID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "script_id", Value: scriptID.String()})

	fields, err = fields.normalize()
	if err != nil {
		return store.Script{}, err
	}

	script, err := p.store.UpdateScript(ctx, scriptID, store.UpdateScriptParams{
		Title:              fields.Title,
		Description:        fields.Description,
		ScriptContent:      fields.ScriptContent,
		GameName:           fields.GameName,
		GameLink:           fields.GameLink,
		BackgroundImageURL: fields.BackgroundImageURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Script{}, ErrScriptNotFound
		}
		p.logger.Error(ctx, "failed to update script", err)
		return store.Script{}, err
	}

	p.logger.Info(ctx, "script updated successfully")
	p.publish(ctx, events.ScriptUpdated, script)
	return script, nil
}

// DeleteScript removes the script with the given id. Deleting an unknown id succeeds.
func (p *ScriptProcessor) DeleteScript(ctx context.Context, id string) error {
	scriptID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidScriptID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "script_id", Value: scriptID.String()})

	if err := p.store.DeleteScript(ctx, scriptID); err != nil {
		p.logger.Error(ctx, "failed to delete script", err)
		return err
	}

	p.logger.Info(ctx, "script deleted successfully")
	p.publish(ctx, events.ScriptDeleted, store.Script{ID: scriptID})
	return nil
}

// ListScripts returns every script, newest first, with global view/copy totals
func (p *ScriptProcessor) ListScripts(ctx context.Context) (ScriptListing, error) {
	scripts, err := p.reader.ListScripts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list scripts", err)
		return ScriptListing{}, err
	}

	totals, err := p.reader.GetEventTotals(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get event totals", err)
		return ScriptListing{}, err
	}

	return ScriptListing{Scripts: scripts, Totals: totals}, nil
}

// GetScriptBySlug returns the public script page data
func (p *ScriptProcessor) GetScriptBySlug(ctx context.Context, slug string) (ScriptWithCounts, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "slug", Value: slug})

	script, err := p.reader.GetScriptBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ScriptWithCounts{}, ErrScriptNotFound
		}
		p.logger.Error(ctx, "failed to get script by slug", err)
		return ScriptWithCounts{}, err
	}

	counts, err := p.reader.GetScriptEventCounts(ctx, script.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to get script event counts", err)
		return ScriptWithCounts{}, err
	}

	return ScriptWithCounts{Script: script, Counts: counts}, nil
}

// publish announces a lifecycle change; failures are logged and never fail the mutation
func (p *ScriptProcessor) publish(ctx context.Context, eventType string, script store.Script) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.PublishScriptEvent(ctx, eventType, script); err != nil {
		p.logger.Error(ctx, "failed to publish script event", err)
	}
}
