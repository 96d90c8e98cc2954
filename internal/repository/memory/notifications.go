package memory

import (
	"context"
	"sort"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type notificationRepo struct {
	d *data
}

func (r *notificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	r.d.nextNoteID++
	note.ID = r.d.nextNoteID
	note.CreatedOn = today()
	cp := *note
	r.d.notes[note.ID] = &cp
	return nil
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID int32, limit int32) ([]domain.Notification, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var notes []domain.Notification
	for _, n := range r.d.notes {
		if n.UserID == userID {
			notes = append(notes, *n)
		}
	}
	// Newest first, same as the postgres ORDER BY id DESC.
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID > notes[j].ID })
	if limit > 0 && int32(len(notes)) > limit {
		notes = notes[:limit]
	}
	return notes, nil
}

func (r *notificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	n, ok := r.d.notes[id]
	if !ok || n.UserID != userID {
		return repository.ErrNotFound
	}
	n.Read = true
	return nil
}
