package request

type CreateStudioReservationRequest struct {
	StudioID    int64   `json:"studio_id" validate:"required,min=1"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	Day         string  `json:"day" validate:"required,datetime=2006-01-02"`
	Start       string  `json:"start" validate:"required"`
	End         string  `json:"end" validate:"required"`
	TeamMembers []int64 `json:"team_members" validate:"omitempty,dive,min=1"`
	Equipment   []int64 `json:"equipment" validate:"omitempty,dive,min=1"`
}

type CreateCoworkReservationRequest struct {
	TableNo int64  `json:"table" validate:"required,min=1"`
	Seats   int    `json:"seats" validate:"required,min=1"`
	Day     string `json:"day" validate:"required,datetime=2006-01-02"`
	Start   string `json:"start" validate:"required"`
	End     string `json:"end" validate:"required"`
}

type CreateMeetingRoomReservationRequest struct {
	MeetingRoomID int64  `json:"meeting_room_id" validate:"required,min=1"`
	Day           string `json:"day" validate:"required,datetime=2006-01-02"`
	Start         string `json:"start" validate:"required"`
	End           string `json:"end" validate:"required"`
}
