package models

// Period defines the morning/afternoon hint decoded from a raw day field.
type Period string

const (
	PeriodNone      Period = ""
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// FollowUpType defines the possible event types in the teacher follow-up log.
type FollowUpType string

const (
	FollowUpAbsence  FollowUpType = "absence"
	FollowUpLateness FollowUpType = "lateness"
	FollowUpMakeup   FollowUpType = "makeup"
	FollowUpNote     FollowUpType = "note"
)
