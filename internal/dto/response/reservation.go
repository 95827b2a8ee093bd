package response

import (
	"time"
)

// ReservationRow is one flat line of the admin reservation list: the
// studio reservation merged with every supplementary map the schema
// could supply. Absent data stays null/empty.
type ReservationRow struct {
	ID          int64            `json:"id"`
	UserName    *string          `json:"user_name"`
	Date        string           `json:"date"`
	Start       string           `json:"start"`
	End         string           `json:"end"`
	Type        string           `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Approved    bool             `json:"approved"`
	StartSigned bool             `json:"start_signed"`
	EndSigned   bool             `json:"end_signed"`
	Canceled    bool             `json:"canceled"`
	Passed      bool             `json:"passed"`
	PlaceName   *string          `json:"place_name"`
	PlaceType   *string          `json:"place_type"`
	Equipments  []EquipmentItem  `json:"equipments"`
	TeamName    *string          `json:"team_name"`
	TeamMembers []TeamMemberItem `json:"team_members"`
	StudioName  *string          `json:"studio_name,omitempty"`
}

type EquipmentItem struct {
	ID        *int64  `json:"id"`
	Reference *string `json:"reference"`
	Mark      *string `json:"mark"`
	Image     *string `json:"image"`
}

type TeamMemberItem struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

type CoworkReservationRow struct {
	ID        int64     `json:"id"`
	UserName  *string   `json:"user_name"`
	TableNo   int64     `json:"table"`
	Seats     int       `json:"seats"`
	Day       string    `json:"day"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Approved  bool      `json:"approved"`
	Canceled  bool      `json:"canceled"`
	CreatedAt time.Time `json:"created_at"`
}

type MeetingRoomReservationRow struct {
	ID        int64     `json:"id"`
	UserName  *string   `json:"user_name"`
	RoomName  *string   `json:"room_name"`
	Day       string    `json:"day"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Approved  bool      `json:"approved"`
	Canceled  bool      `json:"canceled"`
	Passed    bool      `json:"passed"`
	CreatedAt time.Time `json:"created_at"`
}

// OverviewResponse is the full admin index payload.
type OverviewResponse struct {
	Reservations            []ReservationRow            `json:"reservations"`
	CoworkReservations      []CoworkReservationRow      `json:"cowork_reservations"`
	MeetingRoomReservations []MeetingRoomReservationRow `json:"meeting_room_reservations"`
}

// DetailResponse is the team/equipment breakdown for one reservation.
type DetailResponse struct {
	ReservationID int64            `json:"reservation_id"`
	TeamName      *string          `json:"team_name"`
	TeamMembers   []TeamMemberItem `json:"team_members"`
	Equipments    []EquipmentItem  `json:"equipments"`
}

// CalendarEvent is shaped for the calendar widget: ISO-like start/end
// and a status color.
type CalendarEvent struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end"`
	BackgroundColor string `json:"backgroundColor"`
}

// ResourceHeader is the calendar page header for one bookable resource.
type ResourceHeader struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name,omitempty"`
	TableNo *int64  `json:"table,omitempty"`
	Seats   *int    `json:"seats,omitempty"`
	State   *int    `json:"state,omitempty"`
	Image   *string `json:"image"`
}

type UserOption struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

type EquipmentOption struct {
	ID        int64   `json:"id"`
	Reference string  `json:"reference"`
	Mark      string  `json:"mark"`
	Type      string  `json:"type"`
	Image     *string `json:"image"`
}

// CreatedReservationResponse echoes what the store assigned.
type CreatedReservationResponse struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Approved bool   `json:"approved"`
	Canceled bool   `json:"canceled"`
}
