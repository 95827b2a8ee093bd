package repository

import (
	"context"
	"fmt"

	"facility-booking/internal/data/entity"
	"facility-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	// ListOptions returns every user ordered by name, avatar resolved
	// through whichever image column the deployment carries.
	ListOptions(ctx context.Context, caps *Capabilities) ([]entity.User, error)
	AdminEmails(ctx context.Context) ([]string, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT id, name, email, role FROM users WHERE id = $1`

	var user entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.Role)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return &user, nil
}

func (r *userRepository) ListOptions(ctx context.Context, caps *Capabilities) ([]entity.User, error) {
	query := fmt.Sprintf(`
		SELECT u.id, u.name, u.email, u.role, %s
		FROM users u
		ORDER BY u.name
	`, caps.UserImageExpr("u"))

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.Image); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepository) AdminEmails(ctx context.Context) ([]string, error) {
	query := `SELECT email FROM users WHERE role IN ('admin', 'super_admin')`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list admin emails", zap.Error(err))
		return nil, fmt.Errorf("list admin emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan admin email: %w", err)
		}
		emails = append(emails, email)
	}

	return emails, nil
}
