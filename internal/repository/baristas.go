package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

// preferred_shifts and skills are jsonb columns; they are small,
// ordered lists and are never queried individually.

func (r *Repository) CreateBarista(barista *domain.Barista) error {
	query := `
		INSERT INTO baristas (full_name, email, phone, employment_type, max_weekly_hours, preferred_shifts, skills)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_active, created_at, version
	`

	preferredShifts, err := json.Marshal(barista.PreferredShifts)
	if err != nil {
		return err
	}
	skills, err := json.Marshal(barista.Skills)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		barista.FullName,
		barista.Email,
		barista.Phone,
		barista.EmploymentType,
		barista.MaxWeeklyHours,
		preferredShifts,
		skills,
	}
	dst := []any{&barista.ID, &barista.IsActive, &barista.CreatedAt, &barista.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetBaristaByID(id int64) (*domain.Barista, error) {
	query := `
		SELECT full_name, email, phone, employment_type, max_weekly_hours, preferred_shifts, skills, is_active, created_at, version
		FROM baristas WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	barista := &domain.Barista{
		ID: id,
	}

	var preferredShifts, skills []byte
	dst := []any{
		&barista.FullName,
		&barista.Email,
		&barista.Phone,
		&barista.EmploymentType,
		&barista.MaxWeeklyHours,
		&preferredShifts,
		&skills,
		&barista.IsActive,
		&barista.CreatedAt,
		&barista.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(preferredShifts, &barista.PreferredShifts); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(skills, &barista.Skills); err != nil {
		return nil, err
	}

	return barista, nil
}

func (r *Repository) GetAllBaristas() ([]*domain.Barista, error) {
	query := `
		SELECT id, full_name, email, phone, employment_type, max_weekly_hours, preferred_shifts, skills, is_active, created_at, version
		FROM baristas
		ORDER BY full_name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	baristas := []*domain.Barista{}
	for rows.Next() {
		var barista domain.Barista
		var preferredShifts, skills []byte
		dst := []any{
			&barista.ID,
			&barista.FullName,
			&barista.Email,
			&barista.Phone,
			&barista.EmploymentType,
			&barista.MaxWeeklyHours,
			&preferredShifts,
			&skills,
			&barista.IsActive,
			&barista.CreatedAt,
			&barista.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(preferredShifts, &barista.PreferredShifts); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skills, &barista.Skills); err != nil {
			return nil, err
		}
		baristas = append(baristas, &barista)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return baristas, nil
}

func (r *Repository) UpdateBarista(barista *domain.Barista) error {
	query := `
		UPDATE baristas
		SET
			full_name = $1,
			email = $2,
			phone = $3,
			employment_type = $4,
			max_weekly_hours = $5,
			preferred_shifts = $6,
			skills = $7,
			is_active = $8,
			version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING version
	`

	preferredShifts, err := json.Marshal(barista.PreferredShifts)
	if err != nil {
		return err
	}
	skills, err := json.Marshal(barista.Skills)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		barista.FullName,
		barista.Email,
		barista.Phone,
		barista.EmploymentType,
		barista.MaxWeeklyHours,
		preferredShifts,
		skills,
		barista.IsActive,
		barista.ID,
		barista.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&barista.Version); err != nil {
		return err
	}

	return nil
}
