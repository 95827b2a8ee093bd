package repository

import (
	"context"
	"fmt"

	"facility-booking/internal/data/entity"
	"facility-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CoworkRow is a cowork reservation joined with its user name.
type CoworkRow struct {
	entity.CoworkReservation
	UserName *string
}

type CoworkReservationRepository interface {
	Create(ctx context.Context, res *entity.CoworkReservation) error
	FindByID(ctx context.Context, id int64) (*entity.CoworkReservation, error)
	SetStatus(ctx context.Context, id int64, approved, canceled bool) error
	ListWithUserNames(ctx context.Context) ([]CoworkRow, error)
	ListByTable(ctx context.Context, tableID int64) ([]CalendarRow, error)
}

type coworkReservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCoworkReservationRepository(db database.PgxIface, log *zap.Logger) CoworkReservationRepository {
	return &coworkReservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "cowork_reservation")),
	}
}

const coworkColumns = `rc.id, rc.table_no, rc.seats, rc.user_id,
	to_char(rc.day, 'YYYY-MM-DD'), rc.start, rc."end", rc.approved, rc.canceled,
	rc.created_at, rc.updated_at`

func scanCowork(row pgx.Row, res *entity.CoworkReservation, extra ...any) error {
	dest := []any{
		&res.ID, &res.TableNo, &res.Seats, &res.UserID,
		&res.Day, &res.Start, &res.End, &res.Approved, &res.Canceled,
		&res.CreatedAt, &res.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *coworkReservationRepository) Create(ctx context.Context, res *entity.CoworkReservation) error {
	query := `
		INSERT INTO reservation_coworks
			(table_no, seats, user_id, day, start, "end", approved, canceled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		res.TableNo,
		res.Seats,
		res.UserID,
		res.Day,
		res.Start,
		res.End,
		res.Approved,
		res.Canceled,
	).Scan(&res.ID)
	if err != nil {
		r.log.Error("Failed to create cowork reservation",
			zap.Error(err),
			zap.Int64("table_no", res.TableNo),
			zap.Int64("user_id", res.UserID),
		)
		return fmt.Errorf("create cowork reservation: %w", err)
	}

	return nil
}

func (r *coworkReservationRepository) FindByID(ctx context.Context, id int64) (*entity.CoworkReservation, error) {
	query := `SELECT ` + coworkColumns + ` FROM reservation_coworks rc WHERE rc.id = $1`

	var res entity.CoworkReservation
	err := scanCowork(r.db.QueryRow(ctx, query, id), &res)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cowork reservation by ID",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return nil, fmt.Errorf("find cowork reservation by ID %d: %w", id, err)
	}

	return &res, nil
}

func (r *coworkReservationRepository) SetStatus(ctx context.Context, id int64, approved, canceled bool) error {
	query := `
		UPDATE reservation_coworks
		SET approved = $2, canceled = $3, updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, approved, canceled)
	if err != nil {
		r.log.Error("Failed to update cowork reservation status",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return fmt.Errorf("update cowork reservation %d status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cowork reservation %d not found", id)
	}

	return nil
}

func (r *coworkReservationRepository) ListWithUserNames(ctx context.Context) ([]CoworkRow, error) {
	query := `
		SELECT ` + coworkColumns + `, u.name
		FROM reservation_coworks rc
		LEFT JOIN users u ON u.id = rc.user_id
		ORDER BY rc.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list cowork reservations", zap.Error(err))
		return nil, fmt.Errorf("list cowork reservations: %w", err)
	}
	defer rows.Close()

	var result []CoworkRow
	for rows.Next() {
		var row CoworkRow
		if err := scanCowork(rows, &row.CoworkReservation, &row.UserName); err != nil {
			return nil, fmt.Errorf("scan cowork reservation row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

func (r *coworkReservationRepository) ListByTable(ctx context.Context, tableID int64) ([]CalendarRow, error) {
	query := `
		SELECT rc.id, to_char(rc.day, 'YYYY-MM-DD'), rc.start, rc."end",
		       rc.approved, rc.canceled, u.name, c.table_no
		FROM reservation_coworks rc
		LEFT JOIN users u ON u.id = rc.user_id
		LEFT JOIN coworks c ON c.id = rc.table_no
		WHERE rc.table_no = $1
	`

	rows, err := r.db.Query(ctx, query, tableID)
	if err != nil {
		r.log.Error("Failed to list cowork reservations by table",
			zap.Error(err),
			zap.Int64("table_id", tableID),
		)
		return nil, fmt.Errorf("list cowork reservations by table %d: %w", tableID, err)
	}
	defer rows.Close()

	var result []CalendarRow
	for rows.Next() {
		var row CalendarRow
		err := rows.Scan(&row.ID, &row.Day, &row.Start, &row.End,
			&row.Approved, &row.Canceled, &row.UserName, &row.TableNo)
		if err != nil {
			return nil, fmt.Errorf("scan calendar row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}
