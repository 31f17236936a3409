package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
	"github.com/alumlink/alumlink/internal/pkg/helpers"
)

const postColumns = "id, author, title, content, category, likes, created_at"

func scanPost(row pgx.Row) (*models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Author, &p.Title, &p.Content, &p.Category, &p.Likes, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	if post.Likes == nil {
		post.Likes = []int64{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}

	query := `
		INSERT INTO posts (author, title, content, category, likes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		post.Author, post.Title, post.Content, post.Category, post.Likes, post.CreatedAt,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := fmt.Sprintf("SELECT %s FROM posts WHERE id = $1", postColumns)
	p, err := scanPost(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if err := r.attachComments(ctx, []*models.Post{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postRepo) List(ctx context.Context, filter dto.PostFilter) ([]models.Post, int, error) {
	page, limit := helpers.NormalizePageLimit(filter.Page, filter.Limit)

	where := func(qb sq.SelectBuilder) sq.SelectBuilder {
		if filter.Category != "" {
			qb = qb.Where(sq.Eq{"category": filter.Category})
		}
		if filter.Search != "" {
			qb = qb.Where(sq.ILike{"content": "%" + filter.Search + "%"})
		}
		return qb
	}

	countQuery, countArgs, err := where(psql.Select("COUNT(*)").From("posts")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build post count query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query, args, err := where(psql.Select(postColumns).From("posts")).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build post query: %w", err)
	}

	posts, err := r.queryPosts(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepo) ListByAuthor(ctx context.Context, userID int64) ([]models.Post, error) {
	query := fmt.Sprintf("SELECT %s FROM posts WHERE author = $1 ORDER BY created_at DESC, id DESC", postColumns)
	return r.queryPosts(ctx, query, userID)
}

func (r *postRepo) queryPosts(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	var refs []*models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range posts {
		refs = append(refs, &posts[i])
	}
	if err := r.attachComments(ctx, refs); err != nil {
		return nil, err
	}
	return posts, nil
}

// attachComments loads comments for the given posts in one round trip and
// distributes them by post id.
func (r *postRepo) attachComments(ctx context.Context, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Post, len(posts))
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		p.Comments = []models.Comment{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query := `
		SELECT id, post_id, author, content, created_at
		FROM post_comments
		WHERE post_id = ANY($1)
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Comment
		var postID int64
		if err := rows.Scan(&c.ID, &postID, &c.User, &c.Content, &c.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		if p, ok := byID[postID]; ok {
			p.Comments = append(p.Comments, c)
		}
	}
	return rows.Err()
}

func (r *postRepo) ToggleLike(ctx context.Context, postID, userID int64) (*models.Post, error) {
	query := `
		UPDATE posts
		SET likes = CASE
			WHEN likes @> ARRAY[$2]::bigint[] THEN array_remove(likes, $2)
			ELSE array_append(likes, $2)
		END
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrPostNotFound
	}
	return r.GetByID(ctx, postID)
}

func (r *postRepo) AddComment(ctx context.Context, postID, userID int64, content string) (*models.Post, error) {
	query := `
		INSERT INTO post_comments (post_id, author, content, created_at)
		SELECT $1, $2, $3, $4
		WHERE EXISTS (SELECT 1 FROM posts WHERE id = $1)
		RETURNING id`

	var commentID int64
	err := r.db.QueryRow(ctx, query, postID, userID, strings.TrimSpace(content), time.Now()).Scan(&commentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}
	return r.GetByID(ctx, postID)
}

func (r *postRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts").Scan(&n)
	return n, err
}

func (r *postRepo) ListAll(ctx context.Context) ([]models.Post, error) {
	query := fmt.Sprintf("SELECT %s FROM posts ORDER BY id", postColumns)
	return r.queryPosts(ctx, query)
}
