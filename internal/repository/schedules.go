package repository

import (
	"context"
	"time"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

func (r *Repository) CreateSchedule(schedule *domain.WeeklySchedule) error {
	query := `
		INSERT INTO weekly_schedules (week_start, week_end, status, created_by, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		schedule.WeekStart,
		schedule.WeekEnd,
		schedule.Status,
		schedule.CreatedBy,
		schedule.Notes,
	}
	dst := []any{&schedule.ID, &schedule.CreatedAt, &schedule.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetScheduleByID(id int64) (*domain.WeeklySchedule, error) {
	query := `
		SELECT week_start, week_end, status, created_by, notes, created_at, version
		FROM weekly_schedules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	schedule := &domain.WeeklySchedule{
		ID: id,
	}

	dst := []any{
		&schedule.WeekStart,
		&schedule.WeekEnd,
		&schedule.Status,
		&schedule.CreatedBy,
		&schedule.Notes,
		&schedule.CreatedAt,
		&schedule.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return schedule, nil
}

// GetAllSchedules returns schedules newest-first by week start. The
// first element is the roster store's "current" schedule.
func (r *Repository) GetAllSchedules() ([]*domain.WeeklySchedule, error) {
	query := `
		SELECT id, week_start, week_end, status, created_by, notes, created_at, version
		FROM weekly_schedules
		ORDER BY week_start DESC, created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []*domain.WeeklySchedule{}
	for rows.Next() {
		var schedule domain.WeeklySchedule
		dst := []any{
			&schedule.ID,
			&schedule.WeekStart,
			&schedule.WeekEnd,
			&schedule.Status,
			&schedule.CreatedBy,
			&schedule.Notes,
			&schedule.CreatedAt,
			&schedule.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *Repository) UpdateScheduleStatus(schedule *domain.WeeklySchedule, status domain.ScheduleStatus) error {
	query := `
		UPDATE weekly_schedules
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, status, schedule.ID, schedule.Version).Scan(&schedule.Version); err != nil {
		return err
	}

	schedule.Status = status
	return nil
}

// ArchivePublishedSchedules demotes every published schedule to
// archived. Called right before a new schedule is published so that at
// most one schedule is published at a time.
func (r *Repository) ArchivePublishedSchedules() error {
	query := `
		UPDATE weekly_schedules
		SET status = $1, version = version + 1
		WHERE status = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, domain.StatusArchived, domain.StatusPublished); err != nil {
		return err
	}

	return nil
}
