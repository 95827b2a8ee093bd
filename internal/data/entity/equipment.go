package entity

type Equipment struct {
	ID        int64   `db:"id"`
	Reference string  `db:"reference"`
	Mark      string  `db:"mark"`
	Image     *string `db:"image"`
	State     int     `db:"state"`
	TypeName  string  `db:"type_name"`
}

// ReservationEquipment links a reservation to a piece of equipment for
// the reservation's slot; the slot fields are copied onto the link row.
type ReservationEquipment struct {
	ID            int64  `db:"id"`
	ReservationID int64  `db:"reservation_id"`
	EquipmentID   int64  `db:"equipment_id"`
	Day           string `db:"day"`
	Start         string `db:"start"`
	End           string `db:"end"`
}
