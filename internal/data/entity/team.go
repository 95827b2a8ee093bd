package entity

// ReservationTeamMember links users directly to a reservation. This is
// the deployed schema; the named-team tables below only exist on older
// installations.
type ReservationTeamMember struct {
	ID            int64 `db:"id"`
	ReservationID int64 `db:"reservation_id"`
	UserID        int64 `db:"user_id"`
}

type Team struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
