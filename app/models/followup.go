package models

import "time"

// FollowUpEvent represents one append-only follow-up record for a teacher
// (absence, lateness, make-up session or free-text note).
type FollowUpEvent struct {
	ID         string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	Date       time.Time    `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Teacher    string       `json:"teacher" gorm:"not null;index" validate:"required"`
	EventType  FollowUpType `json:"event_type" gorm:"not null;type:varchar(10)" validate:"required,oneof=absence lateness makeup note"`
	Subject    string       `json:"subject,omitempty"`
	HourLabel  string       `json:"hour_label,omitempty"`
	Note       string       `json:"note,omitempty"`
	RecordedBy string       `json:"recorded_by,omitempty" gorm:"type:uuid"`
	CreatedAt  time.Time    `json:"created_at" gorm:"autoCreateTime"`
}
