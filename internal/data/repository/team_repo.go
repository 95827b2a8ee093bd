package repository

import (
	"context"
	"fmt"

	"facility-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TeamMember is one roster entry. EquipmentLink-style pointers: the user
// behind a link row may be gone.
type TeamMember struct {
	ReservationID int64
	UserID        *int64
	Name          *string
	Image         *string
}

// NamedTeam is the legacy teams-table record a reservation may point at.
type NamedTeam struct {
	ID   int64
	Name *string
}

type TeamRepository interface {
	// MembersByReservation loads the full roster map for the list view.
	MembersByReservation(ctx context.Context, caps *Capabilities) (map[int64][]TeamMember, error)
	// MembersForReservation resolves one reservation's roster through
	// the direct reservation_teams -> users join.
	MembersForReservation(ctx context.Context, reservationID int64, caps *Capabilities) ([]TeamMember, error)
	// NamedTeamForReservation and NamedTeamMembers serve the legacy
	// schema where reservation_teams points at a teams row.
	NamedTeamForReservation(ctx context.Context, reservationID int64) (*NamedTeam, error)
	NamedTeamMembers(ctx context.Context, teamID int64, caps *Capabilities) ([]TeamMember, error)
}

type teamRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTeamRepository(db database.PgxIface, log *zap.Logger) TeamRepository {
	return &teamRepository{
		db:  db,
		log: log.With(zap.String("repository", "team")),
	}
}

func (r *teamRepository) MembersByReservation(ctx context.Context, caps *Capabilities) (map[int64][]TeamMember, error) {
	query := fmt.Sprintf(`
		SELECT rt.reservation_id, u.id, u.name, %s
		FROM reservation_teams rt
		LEFT JOIN users u ON u.id = rt.user_id
	`, caps.UserImageExpr("u"))

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load team members", zap.Error(err))
		return nil, fmt.Errorf("load team members: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]TeamMember)
	for rows.Next() {
		var member TeamMember
		if err := rows.Scan(&member.ReservationID, &member.UserID, &member.Name, &member.Image); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		result[member.ReservationID] = append(result[member.ReservationID], member)
	}

	return result, nil
}

func (r *teamRepository) MembersForReservation(ctx context.Context, reservationID int64, caps *Capabilities) ([]TeamMember, error) {
	query := fmt.Sprintf(`
		SELECT rt.reservation_id, u.id, u.name, %s
		FROM reservation_teams rt
		LEFT JOIN users u ON u.id = rt.user_id
		WHERE rt.reservation_id = $1
	`, caps.UserImageExpr("u"))

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to list reservation team",
			zap.Error(err),
			zap.Int64("reservation_id", reservationID),
		)
		return nil, fmt.Errorf("list team for reservation %d: %w", reservationID, err)
	}
	defer rows.Close()

	var members []TeamMember
	for rows.Next() {
		var member TeamMember
		if err := rows.Scan(&member.ReservationID, &member.UserID, &member.Name, &member.Image); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

func (r *teamRepository) NamedTeamForReservation(ctx context.Context, reservationID int64) (*NamedTeam, error) {
	query := `
		SELECT t.id, t.name
		FROM reservation_teams rt
		LEFT JOIN teams t ON t.id = rt.team_id
		WHERE rt.reservation_id = $1
		LIMIT 1
	`

	var team NamedTeam
	err := r.db.QueryRow(ctx, query, reservationID).Scan(&team.ID, &team.Name)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find named team",
			zap.Error(err),
			zap.Int64("reservation_id", reservationID),
		)
		return nil, fmt.Errorf("find named team for reservation %d: %w", reservationID, err)
	}

	return &team, nil
}

func (r *teamRepository) NamedTeamMembers(ctx context.Context, teamID int64, caps *Capabilities) ([]TeamMember, error) {
	query := fmt.Sprintf(`
		SELECT tu.team_id, u.id, u.name, %s
		FROM team_user tu
		LEFT JOIN users u ON u.id = tu.user_id
		WHERE tu.team_id = $1
	`, caps.UserImageExpr("u"))

	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		r.log.Error("Failed to list named team members",
			zap.Error(err),
			zap.Int64("team_id", teamID),
		)
		return nil, fmt.Errorf("list members of team %d: %w", teamID, err)
	}
	defer rows.Close()

	var members []TeamMember
	for rows.Next() {
		var member TeamMember
		var teamRef int64
		if err := rows.Scan(&teamRef, &member.UserID, &member.Name, &member.Image); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}
