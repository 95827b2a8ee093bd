package entity

// Bookable resources. State 1 means available.

type Studio struct {
	ID    int64   `db:"id"`
	Name  string  `db:"name"`
	Image *string `db:"image"`
	State int     `db:"state"`
}

type Cowork struct {
	ID      int64   `db:"id"`
	TableNo int64   `db:"table_no"`
	Seats   int     `db:"seats"`
	Image   *string `db:"image"`
	State   int     `db:"state"`
}

type MeetingRoom struct {
	ID    int64   `db:"id"`
	Name  string  `db:"name"`
	State int     `db:"state"`
	Image *string // first row from meeting_room_images, resolved separately
}

// Place is the optional legacy grouping table some deployments carry.
type Place struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	PlaceType string `db:"place_type"`
}
