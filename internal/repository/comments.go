package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pinkman07/TaksApprovalSystem/internal/models"
)

type CommentRepository struct {
	db      *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	query, args, err := r.builder.
		Insert("comments").
		Columns("task_id", "user_id", "content", "created_at").
		Values(c.TaskID, c.UserID, c.Content, c.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx, query, args...).Scan(&c.ID)
}
