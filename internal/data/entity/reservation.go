package entity

import (
	"time"
)

// ResourceType tags which reservation table a record lives in. The three
// resource kinds keep separate tables and separate payloads but share the
// same lifecycle flags, so status transitions are written once and
// dispatched on this tag.
type ResourceType string

const (
	ResourceStudio      ResourceType = "studio"
	ResourceCowork      ResourceType = "cowork"
	ResourceMeetingRoom ResourceType = "meeting_room"
)

// ParseResourceType maps a route/query value onto a known resource type.
func ParseResourceType(value string) (ResourceType, bool) {
	switch ResourceType(value) {
	case ResourceStudio, ResourceCowork, ResourceMeetingRoom:
		return ResourceType(value), true
	default:
		return "", false
	}
}

// ReservationCore carries the fields every reservation variant shares.
// Day is the calendar date (YYYY-MM-DD), Start/End are wall-clock times
// (HH:MM) kept as strings the way the admin UI submits them.
type ReservationCore struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Day       string    `db:"day"`
	Start     string    `db:"start"`
	End       string    `db:"end"`
	Approved  bool      `db:"approved"`
	Canceled  bool      `db:"canceled"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type StudioReservation struct {
	ReservationCore
	StudioID    int64  `db:"studio_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Passed      bool   `db:"passed"`
	StartSigned bool   `db:"start_signed"`
	EndSigned   bool   `db:"end_signed"`
	ApproveID   *int64 `db:"approve_id"`
}

type CoworkReservation struct {
	ReservationCore
	TableNo int64 `db:"table_no"`
	Seats   int   `db:"seats"`
}

type MeetingRoomReservation struct {
	ReservationCore
	MeetingRoomID int64 `db:"meeting_room_id"`
	Passed        bool  `db:"passed"`
}
