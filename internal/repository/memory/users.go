package memory

import (
	"context"
	"sort"
	"strings"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type userRepo struct {
	d *data
}

func (r *userRepo) Create(ctx context.Context, u *domain.User) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	r.d.nextUserID++
	u.ID = r.d.nextUserID
	u.CreatedOn = today()
	u.UpdatedOn = u.CreatedOn
	cp := *u
	r.d.users[u.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	u, ok := r.d.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for _, u := range r.d.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) Update(ctx context.Context, u *domain.User) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedOn = today()
	cp := *u
	r.d.users[u.ID] = &cp
	return nil
}

func (r *userRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var users []domain.User
	for _, u := range r.d.users {
		if u.Role == role {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}
