package repository

import (
	"context"
	"fmt"

	"facility-booking/internal/data/entity"
	"facility-booking/pkg/database"

	"go.uber.org/zap"
)

// EquipmentLink is one equipment attachment on a reservation. Fields are
// pointers because the equipment row behind a link may have been removed.
type EquipmentLink struct {
	ReservationID int64
	EquipmentID   *int64
	Reference     *string
	Mark          *string
	Image         *string
}

type EquipmentRepository interface {
	// LinksByReservation loads every equipment attachment keyed by
	// reservation id. withImage gates on the equipment.image capability.
	LinksByReservation(ctx context.Context, withImage bool) (map[int64][]EquipmentLink, error)
	ListForReservation(ctx context.Context, reservationID int64, withImage bool) ([]EquipmentLink, error)
	// ListAvailable returns equipment in state 1 with its type name,
	// newest first.
	ListAvailable(ctx context.Context, withImage bool) ([]entity.Equipment, error)
}

type equipmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEquipmentRepository(db database.PgxIface, log *zap.Logger) EquipmentRepository {
	return &equipmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "equipment")),
	}
}

func imageExpr(withImage bool) string {
	if withImage {
		return "e.image"
	}
	return "NULL"
}

func (r *equipmentRepository) LinksByReservation(ctx context.Context, withImage bool) (map[int64][]EquipmentLink, error) {
	query := fmt.Sprintf(`
		SELECT re.reservation_id, e.id, e.reference, e.mark, %s
		FROM reservation_equipment re
		LEFT JOIN equipment e ON e.id = re.equipment_id
	`, imageExpr(withImage))

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load equipment links", zap.Error(err))
		return nil, fmt.Errorf("load equipment links: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]EquipmentLink)
	for rows.Next() {
		var link EquipmentLink
		if err := rows.Scan(&link.ReservationID, &link.EquipmentID, &link.Reference, &link.Mark, &link.Image); err != nil {
			return nil, fmt.Errorf("scan equipment link: %w", err)
		}
		result[link.ReservationID] = append(result[link.ReservationID], link)
	}

	return result, nil
}

func (r *equipmentRepository) ListForReservation(ctx context.Context, reservationID int64, withImage bool) ([]EquipmentLink, error) {
	query := fmt.Sprintf(`
		SELECT re.reservation_id, e.id, e.reference, e.mark, %s
		FROM reservation_equipment re
		LEFT JOIN equipment e ON e.id = re.equipment_id
		WHERE re.reservation_id = $1
	`, imageExpr(withImage))

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to list reservation equipment",
			zap.Error(err),
			zap.Int64("reservation_id", reservationID),
		)
		return nil, fmt.Errorf("list equipment for reservation %d: %w", reservationID, err)
	}
	defer rows.Close()

	var links []EquipmentLink
	for rows.Next() {
		var link EquipmentLink
		if err := rows.Scan(&link.ReservationID, &link.EquipmentID, &link.Reference, &link.Mark, &link.Image); err != nil {
			return nil, fmt.Errorf("scan equipment link: %w", err)
		}
		links = append(links, link)
	}

	return links, nil
}

func (r *equipmentRepository) ListAvailable(ctx context.Context, withImage bool) ([]entity.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT e.id, e.reference, e.mark, %s, e.state, COALESCE(t.name, 'other')
		FROM equipment e
		LEFT JOIN equipment_types t ON t.id = e.equipment_type_id
		WHERE e.state = 1
		ORDER BY e.created_at DESC
	`, imageExpr(withImage))

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list available equipment", zap.Error(err))
		return nil, fmt.Errorf("list available equipment: %w", err)
	}
	defer rows.Close()

	var result []entity.Equipment
	for rows.Next() {
		var eq entity.Equipment
		if err := rows.Scan(&eq.ID, &eq.Reference, &eq.Mark, &eq.Image, &eq.State, &eq.TypeName); err != nil {
			return nil, fmt.Errorf("scan equipment row: %w", err)
		}
		result = append(result, eq)
	}

	return result, nil
}
