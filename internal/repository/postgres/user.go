package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, role, COALESCE(phone, ''), COALESCE(address, ''), age, COALESCE(gender, ''),
	COALESCE(blood_type, ''), COALESCE(last_donation, ''), donations, COALESCE(hospital, ''), COALESCE(medical_condition, ''),
	created_on, updated_on`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, role, phone, address, age, gender, blood_type, last_donation, donations, hospital, medical_condition, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	now := time.Now().Format("2006-01-02")
	u.CreatedOn = now
	u.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Phone, u.Address, u.Age, u.Gender,
		string(u.BloodType), u.LastDonation, u.Donations, u.Hospital, u.MedicalCondition,
		u.CreatedOn, u.UpdatedOn,
	).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, email=$2, phone=$3, address=$4, age=$5, gender=$6, blood_type=$7, last_donation=$8, donations=$9, hospital=$10, medical_condition=$11, updated_on=$12 WHERE id=$13`
	u.UpdatedOn = time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query,
		u.Name, u.Email, u.Phone, u.Address, u.Age, u.Gender,
		string(u.BloodType), u.LastDonation, u.Donations, u.Hospital, u.MedicalCondition,
		u.UpdatedOn, u.ID,
	)
	return err
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *userRepository) scanOne(row rowScanner) (*domain.User, error) {
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var bloodType string
	var createdOn, updatedOn time.Time
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Phone, &u.Address, &u.Age, &u.Gender,
		&bloodType, &u.LastDonation, &u.Donations, &u.Hospital, &u.MedicalCondition,
		&createdOn, &updatedOn,
	)
	if err != nil {
		return nil, err
	}
	u.BloodType = domain.BloodType(bloodType)
	u.CreatedOn = createdOn.Format("2006-01-02")
	u.UpdatedOn = updatedOn.Format("2006-01-02")
	return u, nil
}
