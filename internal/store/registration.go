package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/elite-arena/apiserver/types"
)

// RegistrationRepository handles persistence for competition registrations.
type RegistrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// List returns all registrations, most recently submitted first.
func (r *RegistrationRepository) List(ctx context.Context) ([]types.Registration, error) {
	const query = `
		SELECT id, name, email, team, age, status, created_at, updated_at
		FROM registrations
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]types.Registration, 0)
	for rows.Next() {
		var reg types.Registration
		if err := rows.Scan(
			&reg.ID,
			&reg.Name,
			&reg.Email,
			&reg.Team,
			&reg.Age,
			&reg.Status,
			&reg.CreatedAt,
			&reg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

func (r *RegistrationRepository) Get(ctx context.Context, id int) (types.Registration, error) {
	const query = `
		SELECT id, name, email, team, age, status, created_at, updated_at
		FROM registrations
		WHERE id = $1`
	var reg types.Registration
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&reg.ID,
		&reg.Name,
		&reg.Email,
		&reg.Team,
		&reg.Age,
		&reg.Status,
		&reg.CreatedAt,
		&reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Registration{}, ErrNotFound
		}
		return types.Registration{}, err
	}
	return reg, nil
}

func (r *RegistrationRepository) Create(ctx context.Context, reg types.Registration) (types.Registration, error) {
	now := time.Now()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	const query = `
		INSERT INTO registrations (name, email, team, age, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		reg.Name,
		reg.Email,
		reg.Team,
		reg.Age,
		reg.Status,
		reg.CreatedAt,
		reg.UpdatedAt,
	).Scan(&reg.ID); err != nil {
		return types.Registration{}, err
	}
	return reg, nil
}

// UpdateStatus overwrites the status of an existing registration and
// returns the updated record.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id int, status types.Status) (types.Registration, error) {
	const query = `
		UPDATE registrations
		SET status = $1,
			updated_at = $2
		WHERE id = $3
		RETURNING id, name, email, team, age, status, created_at, updated_at`
	var reg types.Registration
	err := r.db.QueryRowContext(ctx, query, status, time.Now(), id).Scan(
		&reg.ID,
		&reg.Name,
		&reg.Email,
		&reg.Team,
		&reg.Age,
		&reg.Status,
		&reg.CreatedAt,
		&reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Registration{}, ErrNotFound
		}
		return types.Registration{}, err
	}
	return reg, nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM registrations WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
