package postgres

import (
	"context"
	"database/sql"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, note *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, title, message, read, created_on)
	          VALUES ($1, $2, $3, false, $4) RETURNING id`
	note.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, note.UserID, note.Title, note.Message, note.CreatedOn).Scan(&note.ID)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int32, limit int32) ([]domain.Notification, error) {
	query := `SELECT id, user_id, title, message, read, created_on
	          FROM notifications WHERE user_id = $1 ORDER BY id DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var createdOn time.Time
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Read, &createdOn); err != nil {
			return nil, err
		}
		n.CreatedOn = createdOn.Format("2006-01-02")
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET read=true WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
