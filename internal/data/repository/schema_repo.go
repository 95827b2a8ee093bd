package repository

import (
	"context"
	"fmt"

	"facility-booking/pkg/database"

	"go.uber.org/zap"
)

// Capabilities describes which optional tables and columns the connected
// database actually has. Deployments migrate piecemeal, so supplementary
// data (places, teams, equipment, images) is only queried when the schema
// carries it. Computed once at startup and handed to the services as
// plain configuration; absent capability means the dependent data is
// omitted from responses, never an error.
type Capabilities struct {
	Places           bool // reservation_places + places
	ReservationTeams bool // reservation_teams link table
	NamedTeams       bool // legacy teams + team_user tables
	Equipment        bool // reservation_equipment + equipment
	EquipmentImage   bool // equipment.image column
	Studios          bool // studios lookup table
	// Column holding the user avatar: "image", "profile_photo_path",
	// or empty when neither exists.
	UserImageColumn string
}

// UserImageExpr renders the avatar column for a users-joined query,
// NULL when no deployment carries one.
func (c *Capabilities) UserImageExpr(alias string) string {
	if c.UserImageColumn == "" {
		return "NULL"
	}
	return alias + "." + c.UserImageColumn
}

type SchemaRepository interface {
	LoadCapabilities(ctx context.Context) (*Capabilities, error)
}

type schemaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSchemaRepository(db database.PgxIface, log *zap.Logger) SchemaRepository {
	return &schemaRepository{
		db:  db,
		log: log.With(zap.String("repository", "schema")),
	}
}

func (r *schemaRepository) LoadCapabilities(ctx context.Context) (*Capabilities, error) {
	caps := &Capabilities{}

	var err error
	if caps.Places, err = r.bothTables(ctx, "reservation_places", "places"); err != nil {
		return nil, err
	}
	if caps.ReservationTeams, err = r.hasTable(ctx, "reservation_teams"); err != nil {
		return nil, err
	}
	if caps.NamedTeams, err = r.bothTables(ctx, "teams", "team_user"); err != nil {
		return nil, err
	}
	if caps.NamedTeams {
		// The legacy join also reads reservation_teams.team_id; a
		// deployment can carry the team tables without that link column.
		if caps.NamedTeams, err = r.hasColumn(ctx, "reservation_teams", "team_id"); err != nil {
			return nil, err
		}
	}
	if caps.Equipment, err = r.bothTables(ctx, "reservation_equipment", "equipment"); err != nil {
		return nil, err
	}
	if caps.Equipment {
		if caps.EquipmentImage, err = r.hasColumn(ctx, "equipment", "image"); err != nil {
			return nil, err
		}
	}
	if caps.Studios, err = r.hasTable(ctx, "studios"); err != nil {
		return nil, err
	}

	for _, column := range []string{"image", "profile_photo_path"} {
		has, err := r.hasColumn(ctx, "users", column)
		if err != nil {
			return nil, err
		}
		if has {
			caps.UserImageColumn = column
			break
		}
	}

	r.log.Info("Schema capabilities resolved",
		zap.Bool("places", caps.Places),
		zap.Bool("reservation_teams", caps.ReservationTeams),
		zap.Bool("named_teams", caps.NamedTeams),
		zap.Bool("equipment", caps.Equipment),
		zap.Bool("equipment_image", caps.EquipmentImage),
		zap.Bool("studios", caps.Studios),
		zap.String("user_image_column", caps.UserImageColumn),
	)

	return caps, nil
}

func (r *schemaRepository) hasTable(ctx context.Context, table string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, table).Scan(&exists); err != nil {
		return false, fmt.Errorf("probe table %s: %w", table, err)
	}

	return exists, nil
}

func (r *schemaRepository) bothTables(ctx context.Context, first, second string) (bool, error) {
	hasFirst, err := r.hasTable(ctx, first)
	if err != nil || !hasFirst {
		return false, err
	}
	return r.hasTable(ctx, second)
}

func (r *schemaRepository) hasColumn(ctx context.Context, table, column string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_schema = 'public' AND table_name = $1 AND column_name = $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, table, column).Scan(&exists); err != nil {
		return false, fmt.Errorf("probe column %s.%s: %w", table, column, err)
	}

	return exists, nil
}
