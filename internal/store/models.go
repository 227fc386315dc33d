package store

import (
	"time"

	"github.com/google/uuid"
)

// Script is a published content entry
type Script struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	Slug               string    `db:"slug" json:"slug"`
	Title              string    `db:"title" json:"title"`
	Description        *string   `db:"description" json:"description"`
	ScriptContent      string    `db:"script_content" json:"script_content"`
	GameName           *string   `db:"game_name" json:"game_name"`
	GameLink           *string   `db:"game_link" json:"game_link"`
	BackgroundImageURL *string   `db:"background_image_url" json:"background_image_url"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

// AnalyticsEvent is a single view or copy of a script.
// ScriptID is not constrained to an existing script; rows outlive deleted scripts.
type AnalyticsEvent struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ScriptID  uuid.UUID `db:"script_id" json:"script_id"`
	EventType string    `db:"event_type" json:"event_type"`
	IPHash    *string   `db:"ip_hash" json:"ip_hash,omitempty"`
	UserAgent *string   `db:"user_agent" json:"user_agent,omitempty"`
	Country   *string   `db:"country" json:"country"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// EventCounts holds view and copy counts
type EventCounts struct {
	Views  int `db:"views" json:"views"`
	Copies int `db:"copies" json:"copies"`
}
