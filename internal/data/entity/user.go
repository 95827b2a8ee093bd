package entity

type User struct {
	ID    int64   `db:"id"`
	Name  string  `db:"name"`
	Email string  `db:"email"`
	Role  string  `db:"role"`
	Image *string `db:"image"`
}
