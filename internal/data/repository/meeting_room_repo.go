package repository

import (
	"context"
	"fmt"

	"facility-booking/internal/data/entity"
	"facility-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MeetingRoomRow is a meeting-room reservation joined with its user and
// room names.
type MeetingRoomRow struct {
	entity.MeetingRoomReservation
	UserName *string
	RoomName *string
}

type MeetingRoomReservationRepository interface {
	Create(ctx context.Context, res *entity.MeetingRoomReservation) error
	FindByID(ctx context.Context, id int64) (*entity.MeetingRoomReservation, error)
	SetStatus(ctx context.Context, id int64, approved, canceled bool) error
	ListWithUserNames(ctx context.Context) ([]MeetingRoomRow, error)
	ListByRoom(ctx context.Context, roomID int64) ([]CalendarRow, error)
	MarkPassed(ctx context.Context) (int64, error)
}

type meetingRoomReservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMeetingRoomReservationRepository(db database.PgxIface, log *zap.Logger) MeetingRoomReservationRepository {
	return &meetingRoomReservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "meeting_room_reservation")),
	}
}

const meetingRoomColumns = `rm.id, rm.meeting_room_id, rm.user_id,
	to_char(rm.day, 'YYYY-MM-DD'), rm.start, rm."end", rm.approved, rm.canceled,
	rm.passed, rm.created_at, rm.updated_at`

func scanMeetingRoom(row pgx.Row, res *entity.MeetingRoomReservation, extra ...any) error {
	dest := []any{
		&res.ID, &res.MeetingRoomID, &res.UserID,
		&res.Day, &res.Start, &res.End, &res.Approved, &res.Canceled,
		&res.Passed, &res.CreatedAt, &res.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *meetingRoomReservationRepository) Create(ctx context.Context, res *entity.MeetingRoomReservation) error {
	query := `
		INSERT INTO reservation_meeting_rooms
			(meeting_room_id, user_id, day, start, "end", approved, canceled, passed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, now(), now())
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		res.MeetingRoomID,
		res.UserID,
		res.Day,
		res.Start,
		res.End,
		res.Approved,
		res.Canceled,
	).Scan(&res.ID)
	if err != nil {
		r.log.Error("Failed to create meeting room reservation",
			zap.Error(err),
			zap.Int64("meeting_room_id", res.MeetingRoomID),
			zap.Int64("user_id", res.UserID),
		)
		return fmt.Errorf("create meeting room reservation: %w", err)
	}

	return nil
}

func (r *meetingRoomReservationRepository) FindByID(ctx context.Context, id int64) (*entity.MeetingRoomReservation, error) {
	query := `SELECT ` + meetingRoomColumns + ` FROM reservation_meeting_rooms rm WHERE rm.id = $1`

	var res entity.MeetingRoomReservation
	err := scanMeetingRoom(r.db.QueryRow(ctx, query, id), &res)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find meeting room reservation by ID",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return nil, fmt.Errorf("find meeting room reservation by ID %d: %w", id, err)
	}

	return &res, nil
}

func (r *meetingRoomReservationRepository) SetStatus(ctx context.Context, id int64, approved, canceled bool) error {
	query := `
		UPDATE reservation_meeting_rooms
		SET approved = $2, canceled = $3, updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, approved, canceled)
	if err != nil {
		r.log.Error("Failed to update meeting room reservation status",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return fmt.Errorf("update meeting room reservation %d status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("meeting room reservation %d not found", id)
	}

	return nil
}

func (r *meetingRoomReservationRepository) ListWithUserNames(ctx context.Context) ([]MeetingRoomRow, error) {
	query := `
		SELECT ` + meetingRoomColumns + `, u.name, m.name
		FROM reservation_meeting_rooms rm
		LEFT JOIN users u ON u.id = rm.user_id
		LEFT JOIN meeting_rooms m ON m.id = rm.meeting_room_id
		ORDER BY rm.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list meeting room reservations", zap.Error(err))
		return nil, fmt.Errorf("list meeting room reservations: %w", err)
	}
	defer rows.Close()

	var result []MeetingRoomRow
	for rows.Next() {
		var row MeetingRoomRow
		if err := scanMeetingRoom(rows, &row.MeetingRoomReservation, &row.UserName, &row.RoomName); err != nil {
			return nil, fmt.Errorf("scan meeting room reservation row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

func (r *meetingRoomReservationRepository) ListByRoom(ctx context.Context, roomID int64) ([]CalendarRow, error) {
	query := `
		SELECT rm.id, to_char(rm.day, 'YYYY-MM-DD'), rm.start, rm."end",
		       rm.approved, rm.canceled, u.name
		FROM reservation_meeting_rooms rm
		LEFT JOIN users u ON u.id = rm.user_id
		WHERE rm.meeting_room_id = $1
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to list meeting room reservations by room",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("list meeting room reservations by room %d: %w", roomID, err)
	}
	defer rows.Close()

	var result []CalendarRow
	for rows.Next() {
		var row CalendarRow
		err := rows.Scan(&row.ID, &row.Day, &row.Start, &row.End,
			&row.Approved, &row.Canceled, &row.UserName)
		if err != nil {
			return nil, fmt.Errorf("scan calendar row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

func (r *meetingRoomReservationRepository) MarkPassed(ctx context.Context) (int64, error) {
	query := `
		UPDATE reservation_meeting_rooms
		SET passed = true, updated_at = now()
		WHERE passed = false AND canceled = false AND approved = true
		  AND (day < current_date OR (day = current_date AND "end" <= to_char(now(), 'HH24:MI')))
	`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to mark passed meeting room reservations", zap.Error(err))
		return 0, fmt.Errorf("mark passed meeting room reservations: %w", err)
	}

	return result.RowsAffected(), nil
}
