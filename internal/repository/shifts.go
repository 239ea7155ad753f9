package repository

import (
	"context"
	"time"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

func (r *Repository) GetShiftsByScheduleID(scheduleID int64) ([]domain.Shift, error) {
	query := `
		SELECT id, barista_id, day_of_week, shift_type, start_time, end_time, hours, note
		FROM shifts
		WHERE schedule_id = $1
		ORDER BY day_of_week, shift_type, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := []domain.Shift{}
	for rows.Next() {
		shift := domain.Shift{
			ScheduleID: scheduleID,
		}
		dst := []any{
			&shift.ID,
			&shift.BaristaID,
			&shift.DayOfWeek,
			&shift.Type,
			&shift.StartTime,
			&shift.EndTime,
			&shift.Hours,
			&shift.Note,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// ReplaceScheduleShifts swaps a schedule's entire shift list in one
// transaction. Shifts never outlive a regeneration of their schedule.
func (r *Repository) ReplaceScheduleShifts(scheduleID int64, shifts []domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM shifts WHERE schedule_id = $1`
	if _, err := tx.ExecContext(ctx, query, scheduleID); err != nil {
		return err
	}

	query = `
		INSERT INTO shifts (schedule_id, barista_id, day_of_week, shift_type, start_time, end_time, hours, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	for i := range shifts {
		shifts[i].ScheduleID = scheduleID
		params := []any{
			scheduleID,
			shifts[i].BaristaID,
			shifts[i].DayOfWeek,
			shifts[i].Type,
			shifts[i].StartTime,
			shifts[i].EndTime,
			shifts[i].Hours,
			shifts[i].Note,
		}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&shifts[i].ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
