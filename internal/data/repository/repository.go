package repository

import (
	"facility-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Schema      SchemaRepository
	Studio      StudioReservationRepository
	Cowork      CoworkReservationRepository
	MeetingRoom MeetingRoomReservationRepository
	User        UserRepository
	Place       PlaceRepository
	Equipment   EquipmentRepository
	Team        TeamRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Schema:      NewSchemaRepository(db, log),
		Studio:      NewStudioReservationRepository(db, log),
		Cowork:      NewCoworkReservationRepository(db, log),
		MeetingRoom: NewMeetingRoomReservationRepository(db, log),
		User:        NewUserRepository(db, log),
		Place:       NewPlaceRepository(db, log),
		Equipment:   NewEquipmentRepository(db, log),
		Team:        NewTeamRepository(db, log),
	}
}
