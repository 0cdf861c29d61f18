package postgres

import (
	"context"

	"github.com/baharkarakas/mini-linkedin/internal/models"
	"github.com/baharkarakas/mini-linkedin/internal/repository"
	"github.com/jackc/pgx/v5"
)

type postsRepo struct{ db DBTX }

func NewPosts(db DBTX) repository.Posts {
	return &postsRepo{db: db}
}

func (r *postsRepo) Create(ctx context.Context, p models.Post) (models.Post, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO posts (id, author_id, content, image, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, author_id, content, image, created_at`,
		p.ID, p.AuthorID, p.Content, p.Image, p.CreatedAt,
	).Scan(&p.ID, &p.AuthorID, &p.Content, &p.Image, &p.CreatedAt)
	return p, mapErr("create post", err)
}

func (r *postsRepo) GetByID(ctx context.Context, id string) (models.Post, error) {
	var p models.Post
	err := r.db.QueryRow(ctx,
		`SELECT id, author_id, content, image, created_at FROM posts WHERE id = $1`, id,
	).Scan(&p.ID, &p.AuthorID, &p.Content, &p.Image, &p.CreatedAt)
	return p, mapErr("get post", err)
}

// ListFeed returns every post with its author's public fields.
func (r *postsRepo) ListFeed(ctx context.Context) ([]models.Post, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.author_id, p.content, p.image, p.created_at,
		        u.name, u.email, u.profile_image
		   FROM posts p
		   JOIN users u ON u.id = p.author_id
		  ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, mapErr("list feed", err)
	}
	defer rows.Close()

	out := []models.Post{}
	for rows.Next() {
		var p models.Post
		a := &models.Author{}
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Content, &p.Image, &p.CreatedAt,
			&a.Name, &a.Email, &a.ProfileImage); err != nil {
			return nil, mapErr("scan feed", err)
		}
		a.ID = p.AuthorID
		p.Author = a
		out = append(out, p)
	}
	return out, mapErr("list feed", rows.Err())
}

func (r *postsRepo) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, author_id, content, image, created_at
		   FROM posts
		  WHERE author_id = $1
		  ORDER BY created_at DESC, id DESC`, authorID)
	if err != nil {
		return nil, mapErr("list posts", err)
	}
	defer rows.Close()

	out := []models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Content, &p.Image, &p.CreatedAt); err != nil {
			return nil, mapErr("scan post", err)
		}
		out = append(out, p)
	}
	return out, mapErr("list posts", rows.Err())
}

// Delete removes the post; zero affected rows means it was already gone.
func (r *postsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete post", err)
	}
	if tag.RowsAffected() == 0 {
		return mapErr("delete post", pgx.ErrNoRows)
	}
	return nil
}
