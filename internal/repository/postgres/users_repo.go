// internal/repository/postgres/users_repo.go
package postgres

import (
	"context"

	"github.com/baharkarakas/mini-linkedin/internal/models"
	"github.com/baharkarakas/mini-linkedin/internal/repository"
	"github.com/jackc/pgx/v5"
)

type usersRepo struct{ db DBTX }

func NewUsers(db DBTX) repository.Users {
	return &usersRepo{db: db}
}

const userColumns = `id, name, email, COALESCE(username, ''), password_hash, bio, profile_image, background_image, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.PasswordHash, &u.Bio,
		&u.ProfileImage, &u.BackgroundImage, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, username, password_hash, bio, created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $7)
		 RETURNING `+userColumns,
		u.ID, u.Name, u.Email, u.Username, u.PasswordHash, u.Bio, u.CreatedAt,
	)
	out, err := scanUser(row)
	return out, mapErr("create user", err)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	return u, mapErr("get user", err)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	return u, mapErr("get user by email", err)
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	return u, mapErr("get user by username", err)
}

// UpdateProfile leaves a column unchanged when its argument is NULL.
func (r *usersRepo) UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) (models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users
		    SET name = COALESCE($2, name),
		        bio = COALESCE($3, bio),
		        updated_at = now()
		  WHERE id = $1
		  RETURNING `+userColumns,
		id, upd.Name, upd.Bio,
	))
	return u, mapErr("update profile", err)
}

func (r *usersRepo) SetProfileImage(ctx context.Context, id, url string) (models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users SET profile_image = $2, updated_at = now() WHERE id = $1 RETURNING `+userColumns,
		id, url,
	))
	return u, mapErr("set profile image", err)
}

func (r *usersRepo) SetBackgroundImage(ctx context.Context, id, url string) (models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users SET background_image = $2, updated_at = now() WHERE id = $1 RETURNING `+userColumns,
		id, url,
	))
	return u, mapErr("set background image", err)
}

func (r *usersRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, mapErr("count users", err)
}
