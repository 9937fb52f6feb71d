package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChatMessage is one moderated chat turn: the student's message and the
// generated response. Immutable once stored.
type ChatMessage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	StudentID uint   `json:"studentId" gorm:"not null;index"`
	Message   string `json:"message" gorm:"not null;type:text"`
	Response  string `json:"chat_response" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ModerationRuleSet holds the guidance constraints sent to the text
// generation provider alongside every student message.
type ModerationRuleSet struct {
	ID                 uint                        `json:"id" gorm:"primaryKey"`
	Rules              datatypes.JSONSlice[string] `json:"moderation_rules"`
	FlaggedSubmissions datatypes.JSONSlice[uint]   `json:"flaggedSubmissions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ModerationRuleSet) TableName() string {
	return "moderation_rule_sets"
}

// DefaultModerationRules mirrors the seed constraints used when no rule set
// has been stored yet.
func DefaultModerationRules() []string {
	return []string{
		"AI should not provide direct answers to assignments, only guidance.",
		"Limit AI responses to a maximum of 100 words per response.",
		"AI can provide hints and explanations but must not generate full essays or reports.",
		"AI should cite sources for external references but should not provide full content.",
		"AI should not generate full code solutions; it may only suggest debugging tips",
	}
}
