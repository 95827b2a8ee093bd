package repository

import (
	"context"
	"fmt"

	"facility-booking/internal/data/entity"
	"facility-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PlaceInfo is the supplementary place data keyed by reservation id.
type PlaceInfo struct {
	Name      *string
	PlaceType *string
}

type PlaceRepository interface {
	FindStudio(ctx context.Context, id int64) (*entity.Studio, error)
	FindCowork(ctx context.Context, id int64) (*entity.Cowork, error)
	FindMeetingRoom(ctx context.Context, id int64) (*entity.MeetingRoom, error)
	// PlacesByReservation loads the optional reservation_places map.
	// Callers gate on the Places capability.
	PlacesByReservation(ctx context.Context) (map[int64]PlaceInfo, error)
}

type placeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlaceRepository(db database.PgxIface, log *zap.Logger) PlaceRepository {
	return &placeRepository{
		db:  db,
		log: log.With(zap.String("repository", "place")),
	}
}

func (r *placeRepository) FindStudio(ctx context.Context, id int64) (*entity.Studio, error) {
	query := `SELECT id, name, image, state FROM studios WHERE id = $1`

	var studio entity.Studio
	err := r.db.QueryRow(ctx, query, id).Scan(&studio.ID, &studio.Name, &studio.Image, &studio.State)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find studio", zap.Error(err), zap.Int64("studio_id", id))
		return nil, fmt.Errorf("find studio %d: %w", id, err)
	}

	return &studio, nil
}

func (r *placeRepository) FindCowork(ctx context.Context, id int64) (*entity.Cowork, error) {
	query := `SELECT id, table_no, seats, image, state FROM coworks WHERE id = $1`

	var cowork entity.Cowork
	err := r.db.QueryRow(ctx, query, id).Scan(&cowork.ID, &cowork.TableNo, &cowork.Seats, &cowork.Image, &cowork.State)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cowork", zap.Error(err), zap.Int64("cowork_id", id))
		return nil, fmt.Errorf("find cowork %d: %w", id, err)
	}

	return &cowork, nil
}

func (r *placeRepository) FindMeetingRoom(ctx context.Context, id int64) (*entity.MeetingRoom, error) {
	query := `SELECT id, name, state FROM meeting_rooms WHERE id = $1`

	var room entity.MeetingRoom
	err := r.db.QueryRow(ctx, query, id).Scan(&room.ID, &room.Name, &room.State)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find meeting room", zap.Error(err), zap.Int64("meeting_room_id", id))
		return nil, fmt.Errorf("find meeting room %d: %w", id, err)
	}

	// First image, if any
	imageQuery := `
		SELECT image FROM meeting_room_images
		WHERE meeting_room_id = $1
		ORDER BY id
		LIMIT 1
	`
	var image string
	err = r.db.QueryRow(ctx, imageQuery, id).Scan(&image)
	if err != nil && err != pgx.ErrNoRows {
		return nil, fmt.Errorf("find meeting room %d image: %w", id, err)
	}
	if err == nil {
		room.Image = &image
	}

	return &room, nil
}

func (r *placeRepository) PlacesByReservation(ctx context.Context) (map[int64]PlaceInfo, error) {
	query := `
		SELECT rp.reservation_id, p.name, p.place_type
		FROM reservation_places rp
		LEFT JOIN places p ON p.id = rp.places_id
		ORDER BY rp.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load places by reservation", zap.Error(err))
		return nil, fmt.Errorf("load places by reservation: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]PlaceInfo)
	for rows.Next() {
		var reservationID int64
		var info PlaceInfo
		if err := rows.Scan(&reservationID, &info.Name, &info.PlaceType); err != nil {
			return nil, fmt.Errorf("scan place row: %w", err)
		}
		// DESC ordering: first row seen per reservation wins
		if _, seen := result[reservationID]; !seen {
			result[reservationID] = info
		}
	}

	return result, nil
}
