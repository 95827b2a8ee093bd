package repository

import (
	"context"
	"fmt"

	"facility-booking/internal/data/entity"
	"facility-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// StudioRow is a studio reservation joined with its user (and studio
// name when the studios table is present).
type StudioRow struct {
	entity.StudioReservation
	UserName   *string
	StudioName *string
}

// CalendarRow carries the fields the calendar feed composes per type.
type CalendarRow struct {
	ID       int64
	Day      string
	Start    string
	End      string
	Title    string
	Approved bool
	Canceled bool
	UserName *string
	TableNo  *int64
}

type StudioReservationRepository interface {
	Create(ctx context.Context, res *entity.StudioReservation, teamMembers, equipment []int64) error
	FindByID(ctx context.Context, id int64) (*entity.StudioReservation, error)
	SetStatus(ctx context.Context, id int64, approved, canceled bool, approveID *int64) error
	ListWithUserNames(ctx context.Context, withStudioName bool) ([]StudioRow, error)
	ListPage(ctx context.Context, limit, offset int) ([]StudioRow, error)
	FindWithUserName(ctx context.Context, id int64) (*StudioRow, error)
	ListByStudio(ctx context.Context, studioID int64) ([]CalendarRow, error)
	MarkPassed(ctx context.Context) (int64, error)
}

type studioReservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStudioReservationRepository(db database.PgxIface, log *zap.Logger) StudioReservationRepository {
	return &studioReservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "studio_reservation")),
	}
}

const studioColumns = `r.id, r.studio_id, r.user_id, r.title, r.description,
	to_char(r.day, 'YYYY-MM-DD'), r.start, r."end", r.approved, r.canceled,
	r.passed, r.start_signed, r.end_signed, r.approve_id, r.created_at, r.updated_at`

func scanStudio(row pgx.Row, res *entity.StudioReservation, extra ...any) error {
	dest := []any{
		&res.ID, &res.StudioID, &res.UserID, &res.Title, &res.Description,
		&res.Day, &res.Start, &res.End, &res.Approved, &res.Canceled,
		&res.Passed, &res.StartSigned, &res.EndSigned, &res.ApproveID,
		&res.CreatedAt, &res.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

// Create inserts the reservation and its team/equipment links in one
// transaction. The id comes back from the store's sequence, so two
// concurrent writers can never collide on it.
func (r *studioReservationRepository) Create(ctx context.Context, res *entity.StudioReservation, teamMembers, equipment []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create reservation: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO reservations
			(studio_id, user_id, title, description, day, start, "end", type,
			 approved, canceled, passed, start_signed, end_signed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'studio', $8, $9, false, false, false, now(), now())
		RETURNING id
	`

	err = tx.QueryRow(ctx, insert,
		res.StudioID,
		res.UserID,
		res.Title,
		res.Description,
		res.Day,
		res.Start,
		res.End,
		res.Approved,
		res.Canceled,
	).Scan(&res.ID)
	if err != nil {
		r.log.Error("Failed to insert reservation",
			zap.Error(err),
			zap.Int64("studio_id", res.StudioID),
			zap.Int64("user_id", res.UserID),
		)
		return fmt.Errorf("insert reservation: %w", err)
	}

	for _, userID := range teamMembers {
		_, err := tx.Exec(ctx, `
			INSERT INTO reservation_teams (reservation_id, user_id, created_at, updated_at)
			VALUES ($1, $2, now(), now())
		`, res.ID, userID)
		if err != nil {
			return fmt.Errorf("insert team member %d: %w", userID, err)
		}
	}

	for _, equipmentID := range equipment {
		_, err := tx.Exec(ctx, `
			INSERT INTO reservation_equipment (reservation_id, equipment_id, day, start, "end", created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
		`, res.ID, equipmentID, res.Day, res.Start, res.End)
		if err != nil {
			return fmt.Errorf("insert equipment link %d: %w", equipmentID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create reservation: %w", err)
	}

	return nil
}

func (r *studioReservationRepository) FindByID(ctx context.Context, id int64) (*entity.StudioReservation, error) {
	query := `SELECT ` + studioColumns + ` FROM reservations r WHERE r.id = $1`

	var res entity.StudioReservation
	err := scanStudio(r.db.QueryRow(ctx, query, id), &res)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return nil, fmt.Errorf("find reservation by ID %d: %w", id, err)
	}

	return &res, nil
}

// SetStatus writes both flags in one statement so approved and canceled
// can never be observed true together. approveID nil leaves the stamp as
// it was.
func (r *studioReservationRepository) SetStatus(ctx context.Context, id int64, approved, canceled bool, approveID *int64) error {
	query := `
		UPDATE reservations
		SET approved = $2, canceled = $3, approve_id = COALESCE($4, approve_id), updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, approved, canceled, approveID)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return fmt.Errorf("update reservation %d status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %d not found", id)
	}

	return nil
}

func (r *studioReservationRepository) ListWithUserNames(ctx context.Context, withStudioName bool) ([]StudioRow, error) {
	studioSelect := "NULL"
	studioJoin := ""
	if withStudioName {
		studioSelect = "s.name"
		studioJoin = "LEFT JOIN studios s ON s.id = r.studio_id"
	}

	query := fmt.Sprintf(`
		SELECT %s, u.name, %s
		FROM reservations r
		LEFT JOIN users u ON u.id = r.user_id
		%s
		ORDER BY r.created_at DESC
	`, studioColumns, studioSelect, studioJoin)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var result []StudioRow
	for rows.Next() {
		var row StudioRow
		if err := scanStudio(rows, &row.StudioReservation, &row.UserName, &row.StudioName); err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// ListPage returns one export batch, newest first. Ordering matches
// ListWithUserNames so pages do not shuffle between fetches.
func (r *studioReservationRepository) ListPage(ctx context.Context, limit, offset int) ([]StudioRow, error) {
	query := `
		SELECT ` + studioColumns + `, u.name, NULL
		FROM reservations r
		LEFT JOIN users u ON u.id = r.user_id
		ORDER BY r.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list reservation page",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list reservation page: %w", err)
	}
	defer rows.Close()

	var result []StudioRow
	for rows.Next() {
		var row StudioRow
		if err := scanStudio(rows, &row.StudioReservation, &row.UserName, &row.StudioName); err != nil {
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

func (r *studioReservationRepository) FindWithUserName(ctx context.Context, id int64) (*StudioRow, error) {
	query := `
		SELECT ` + studioColumns + `, u.name, NULL
		FROM reservations r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.id = $1
	`

	var row StudioRow
	err := scanStudio(r.db.QueryRow(ctx, query, id), &row.StudioReservation, &row.UserName, &row.StudioName)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation with user",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return nil, fmt.Errorf("find reservation %d with user: %w", id, err)
	}

	return &row, nil
}

func (r *studioReservationRepository) ListByStudio(ctx context.Context, studioID int64) ([]CalendarRow, error) {
	query := `
		SELECT r.id, to_char(r.day, 'YYYY-MM-DD'), r.start, r."end", r.title,
		       r.approved, r.canceled, u.name
		FROM reservations r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.studio_id = $1
	`

	rows, err := r.db.Query(ctx, query, studioID)
	if err != nil {
		r.log.Error("Failed to list reservations by studio",
			zap.Error(err),
			zap.Int64("studio_id", studioID),
		)
		return nil, fmt.Errorf("list reservations by studio %d: %w", studioID, err)
	}
	defer rows.Close()

	var result []CalendarRow
	for rows.Next() {
		var row CalendarRow
		err := rows.Scan(&row.ID, &row.Day, &row.Start, &row.End, &row.Title,
			&row.Approved, &row.Canceled, &row.UserName)
		if err != nil {
			return nil, fmt.Errorf("scan calendar row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// MarkPassed flips passed on approved reservations whose slot has fully
// elapsed. End times are zero-padded HH:MM, so text comparison is safe.
func (r *studioReservationRepository) MarkPassed(ctx context.Context) (int64, error) {
	query := `
		UPDATE reservations
		SET passed = true, updated_at = now()
		WHERE passed = false AND canceled = false AND approved = true
		  AND (day < current_date OR (day = current_date AND "end" <= to_char(now(), 'HH24:MI')))
	`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to mark passed reservations", zap.Error(err))
		return 0, fmt.Errorf("mark passed reservations: %w", err)
	}

	return result.RowsAffected(), nil
}
