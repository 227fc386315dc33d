package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const scriptSlugConstraint = "scripts_slug_key"

const scriptColumns = `id, slug, title, description, script_content, game_name, game_link, background_image_url, created_at, updated_at`

// CreateScriptParams represents parameters for creating a script
type CreateScriptParams struct {
	Slug               string
	Title              string
	Description        *string
	ScriptContent      string
	GameName           *string
	GameLink           *string
	BackgroundImageURL *string
}

// UpdateScriptParams represents the mutable fields of a script
type UpdateScriptParams struct {
	Title              string
	Description        *string
	ScriptContent      string
	GameName           *string
	GameLink           *string
	BackgroundImageURL *string
}

const sqlCreateScript = `
INSERT INTO scripts (slug, title, description, script_content, game_name, game_link, background_image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + scriptColumns

// CreateScript inserts a script. Returns ErrSlugConflict when the slug is taken.
func (s *Store) CreateScript(ctx context.Context, params CreateScriptParams) (Script, error) {
	var script Script
	err := s.db.GetContext(ctx, &script, sqlCreateScript,
		params.Slug,
		params.Title,
		params.Description,
		params.ScriptContent,
		params.GameName,
		params.GameLink,
		params.BackgroundImageURL,
	)
	if err != nil {
		if isUniqueViolation(err, scriptSlugConstraint) {
			return Script{}, ErrSlugConflict
		}
		s.logger.Error(ctx, "failed to create script", err)
		return Script{}, fmt.Errorf("failed to create script: %w", err)
	}
	return script, nil
}

const sqlGetScriptByID = `
SELECT ` + scriptColumns + `
FROM scripts
WHERE id = $1
`

// GetScriptByID retrieves a script by ID
func (s *Store) GetScriptByID(ctx context.Context, scriptID uuid.UUID) (Script, error) {
	var script Script
	err := s.db.GetContext(ctx, &script, sqlGetScriptByID, scriptID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Script{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get script by id", err)
		return Script{}, fmt.Errorf("failed to get script by id: %w", err)
	}
	return script, nil
}

const sqlGetScriptBySlug = `
SELECT ` + scriptColumns + `
FROM scripts
WHERE slug = $1
`

// GetScriptBySlug retrieves a script by its public slug
func (s *Store) GetScriptBySlug(ctx context.Context, slug string) (Script, error) {
	var script Script
	err := s.db.GetContext(ctx, &script, sqlGetScriptBySlug, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Script{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get script by slug", err)
		return Script{}, fmt.Errorf("failed to get script by slug: %w", err)
	}
	return script, nil
}

const sqlListScripts = `
SELECT ` + scriptColumns + `
FROM scripts
ORDER BY created_at DESC
`

// ListScripts returns all scripts, newest first
func (s *Store) ListScripts(ctx context.Context) ([]Script, error) {
	scripts := []Script{}
	err := s.db.SelectContext(ctx, &scripts, sqlListScripts)
	if err != nil {
		s.logger.Error(ctx, "failed to list scripts", err)
		return nil, fmt.Errorf("failed to list scripts: %w", err)
	}
	return scripts, nil
}

const sqlUpdateScript = `
UPDATE scripts
SET title = $2,
    description = $3,
    script_content = $4,
    game_name = $5,
    game_link = $6,
    background_image_url = $7,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + scriptColumns

// UpdateScript overwrites the mutable fields of a script. The slug never changes.
func (s *Store) UpdateScript(ctx context.Context, scriptID uuid.UUID, params UpdateScriptParams) (Script, error) {
	var script Script
	err := s.db.GetContext(ctx, &script, sqlUpdateScript,
		scriptID,
		params.Title,
		params.Description,
		params.ScriptContent,
		params.GameName,
		params.GameLink,
		params.BackgroundImageURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Script{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update script", err)
		return Script{}, fmt.Errorf("failed to update script: %w", err)
	}
	return script, nil
}

const sqlDeleteScript = `
DELETE FROM scripts
WHERE id = $1
`

// DeleteScript hard deletes a script. Deleting a missing script is not an error.
// Analytics rows referencing the script are left in place.
func (s *Store) DeleteScript(ctx context.Context, scriptID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlDeleteScript, scriptID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete script", err)
		return fmt.Errorf("failed to delete script: %w", err)
	}
	return nil
}
