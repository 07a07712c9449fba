package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pinkman07/TaksApprovalSystem/internal/models"
)

type TaskRepository struct {
	db      *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts the task and its approver set in one transaction, so a
// failed approver insert leaves no half-created task behind.
func (r *TaskRepository) Create(ctx context.Context, t *models.Task, approverIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query, args, err := r.builder.
		Insert("tasks").
		Columns("title", "description", "status", "creator_id").
		Values(t.Title, t.Description, t.Status, t.CreatorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}
	if err := tx.QueryRow(ctx, query, args...).Scan(&t.ID); err != nil {
		return err
	}

	for _, approverID := range approverIDs {
		query, args, err := r.builder.
			Insert("tasks_approvers").
			Columns("task_id", "user_id").
			Values(t.ID, approverID).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	query, args, err := r.builder.
		Select("id", "title", "description", "status", "creator_id").
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var t models.Task
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatorID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadRelations(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) GetAll(ctx context.Context) ([]models.Task, error) {
	query, args, err := r.builder.
		Select("id", "title", "description", "status", "creator_id").
		From("tasks").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryTasks(ctx, query, args)
}

func (r *TaskRepository) GetByCreator(ctx context.Context, userID int64) ([]models.Task, error) {
	query, args, err := r.builder.
		Select("id", "title", "description", "status", "creator_id").
		From("tasks").
		Where(squirrel.Eq{"creator_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryTasks(ctx, query, args)
}

func (r *TaskRepository) GetByApprover(ctx context.Context, userID int64) ([]models.Task, error) {
	query, args, err := r.builder.
		Select("t.id", "t.title", "t.description", "t.status", "t.creator_id").
		From("tasks t").
		Join("tasks_approvers ta ON ta.task_id = t.id").
		Where(squirrel.Eq{"ta.user_id": userID}).
		OrderBy("t.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryTasks(ctx, query, args)
}

// AddApproval inserts the approval, counts the task's approvals and, once
// the count reaches threshold, flips the task to APPROVED — all in one
// transaction, so a failed status write also discards the approval.
func (r *TaskRepository) AddApproval(ctx context.Context, a *models.Approval, threshold int) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	query, args, err := r.builder.
		Insert("approvals").
		Columns("task_id", "approver_id", "approval_date", "approved").
		Values(a.TaskID, a.ApproverID, a.ApprovalDate, a.Approved).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}
	if err := tx.QueryRow(ctx, query, args...).Scan(&a.ID); err != nil {
		return 0, err
	}

	query, args, err = r.builder.
		Select("COUNT(*)").
		From("approvals").
		Where(squirrel.Eq{"task_id": a.TaskID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	if count >= threshold {
		query, args, err = r.builder.
			Update("tasks").
			Set("status", models.StatusApproved).
			Where(squirrel.Eq{"id": a.TaskID}).
			ToSql()
		if err != nil {
			return 0, err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return 0, err
		}
	}

	return count, tx.Commit(ctx)
}

// Update rewrites title and description and merges the given approver ids
// into the approver set. Existing approvers are never removed.
func (r *TaskRepository) Update(ctx context.Context, t *models.Task, addApproverIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query, args, err := r.builder.
		Update("tasks").
		Set("title", t.Title).
		Set("description", t.Description).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return err
	}

	for _, approverID := range addApproverIDs {
		query, args, err := r.builder.
			Insert("tasks_approvers").
			Columns("task_id", "user_id").
			Values(t.ID, approverID).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, args []interface{}) ([]models.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatorID); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tasks {
		if err := r.loadRelations(ctx, &tasks[i]); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

func (r *TaskRepository) loadRelations(ctx context.Context, t *models.Task) error {
	query, args, err := r.builder.
		Select("id", "email", "name").
		From("users").
		Where(squirrel.Eq{"id": t.CreatorID}).
		ToSql()
	if err != nil {
		return err
	}
	var creator models.User
	if err := r.db.QueryRow(ctx, query, args...).Scan(&creator.ID, &creator.Email, &creator.Name); err != nil {
		return err
	}
	t.Creator = &creator

	if t.Approvers, err = r.approvers(ctx, t.ID); err != nil {
		return err
	}
	if t.Approvals, err = r.approvals(ctx, t.ID); err != nil {
		return err
	}
	if t.Comments, err = r.comments(ctx, t.ID); err != nil {
		return err
	}
	return nil
}

func (r *TaskRepository) approvers(ctx context.Context, taskID int64) ([]models.User, error) {
	query, args, err := r.builder.
		Select("u.id", "u.email", "u.name").
		From("users u").
		Join("tasks_approvers ta ON ta.user_id = u.id").
		Where(squirrel.Eq{"ta.task_id": taskID}).
		OrderBy("u.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var approvers []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name); err != nil {
			return nil, err
		}
		approvers = append(approvers, u)
	}
	return approvers, rows.Err()
}

func (r *TaskRepository) approvals(ctx context.Context, taskID int64) ([]models.Approval, error) {
	query, args, err := r.builder.
		Select("id", "task_id", "approver_id", "approval_date", "approved").
		From("approvals").
		Where(squirrel.Eq{"task_id": taskID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var approvals []models.Approval
	for rows.Next() {
		var a models.Approval
		if err := rows.Scan(&a.ID, &a.TaskID, &a.ApproverID, &a.ApprovalDate, &a.Approved); err != nil {
			return nil, err
		}
		approvals = append(approvals, a)
	}
	return approvals, rows.Err()
}

func (r *TaskRepository) comments(ctx context.Context, taskID int64) ([]models.Comment, error) {
	query, args, err := r.builder.
		Select("c.id", "c.task_id", "c.user_id", "u.name", "c.content", "c.created_at").
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(squirrel.Eq{"c.task_id": taskID}).
		OrderBy("c.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.UserID, &c.UserName, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
