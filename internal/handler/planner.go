package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
	"github.com/Derda24/wodenstockai-sub000/internal/planner"
	"github.com/Derda24/wodenstockai-sub000/internal/utils"
)

func (h *Handler) saveGrid(r *http.Request, sid string, grid *planner.Grid) error {
	raw, err := json.Marshal(grid)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	// every save refreshes the TTL, so an actively edited grid never
	// expires under the planner's hands
	ttl := time.Duration(h.config.Planner.SessionTTL) * time.Minute
	return h.redisClient.Set(ctx, gridKey(sid), raw, ttl).Err()
}

// GetPlannerCatalog serves the fixed drag-token catalogs the editor
// renders its palettes from.
func (h *Handler) GetPlannerCatalog(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "planner catalog", map[string]any{
		"day_names":      planner.DayNames,
		"time_ranges":    planner.ShiftTimeRanges,
		"day_events":     planner.DayEvents,
		"opening_target": planner.OpeningTarget,
		"closing_target": planner.ClosingTarget,
	})
}

// CreatePlannerSession opens a fresh editing grid. Grids are scratch
// state in redis; nothing reaches the schedule store until publish.
func (h *Handler) CreatePlannerSession(w http.ResponseWriter, r *http.Request) {
	sid := utils.GenerateRandomID(8, 4)
	grid := planner.NewGrid()

	if err := h.saveGrid(r, sid, grid); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "planner session created", map[string]any{
		"session_id": sid,
		"grid":       grid,
	})
}

func (h *Handler) GetPlannerGrid(w http.ResponseWriter, r *http.Request) {
	grid := r.Context().Value(GridCtx).(*planner.Grid)
	h.successResponse(w, r, "planner grid", grid)
}

// ApplyPlannerDrop performs one drag-and-drop gesture. An invalid or
// duplicate drop is not an error: the grid ignores it and the client is
// told nothing changed.
func (h *Handler) ApplyPlannerDrop(w http.ResponseWriter, r *http.Request) {
	grid := r.Context().Value(GridCtx).(*planner.Grid)
	sid := r.Context().Value(GridIDCtx).(string)

	var drop planner.Drop
	if err := h.readJSON(r, &drop); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !grid.Apply(drop) {
		h.successResponse(w, r, "drop ignored", grid)
		return
	}

	if err := h.saveGrid(r, sid, grid); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "drop applied", grid)
}

func (h *Handler) ApplyPlannerRemoval(w http.ResponseWriter, r *http.Request) {
	grid := r.Context().Value(GridCtx).(*planner.Grid)
	sid := r.Context().Value(GridIDCtx).(string)

	var req struct {
		Kind    planner.DropKind `json:"kind" validate:"required"`
		Day     int              `json:"day"`
		Slot    planner.SlotKind `json:"slot"`
		Barista string           `json:"barista"`
		Label   string           `json:"label"`
	}
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	var removed bool
	switch req.Kind {
	case planner.DropBarista:
		removed = grid.RemoveBarista(req.Day, req.Slot, req.Barista)
	case planner.DropTimeLabel:
		removed = grid.RemoveTimeLabel(req.Barista, req.Slot)
	case planner.DropEvent:
		removed = grid.RemoveEvent(req.Day, req.Label)
	}

	if !removed {
		h.successResponse(w, r, "nothing to remove", grid)
		return
	}

	if err := h.saveGrid(r, sid, grid); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "removed", grid)
}

func (h *Handler) ClearPlannerGrid(w http.ResponseWriter, r *http.Request) {
	grid := r.Context().Value(GridCtx).(*planner.Grid)
	sid := r.Context().Value(GridIDCtx).(string)

	grid.Clear()

	if err := h.saveGrid(r, sid, grid); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "planner grid cleared", grid)
}

// GetAvailableBaristas serves the per-day pool of baristas not yet
// placed anywhere on that day.
func (h *Handler) GetAvailableBaristas(w http.ResponseWriter, r *http.Request) {
	grid := r.Context().Value(GridCtx).(*planner.Grid)

	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil || day < 0 || day > 6 {
		h.errorResponse(w, r, "day must be 0 (Monday) to 6 (Sunday)")
		return
	}

	h.successResponse(w, r, "available baristas", grid.Available(day, h.store.Baristas()))
}

func (h *Handler) GetPlannerCoverage(w http.ResponseWriter, r *http.Request) {
	grid := r.Context().Value(GridCtx).(*planner.Grid)

	coverage := make([]planner.Coverage, 7)
	for day := range coverage {
		coverage[day] = grid.Coverage(day)
	}

	h.successResponse(w, r, "planner coverage", coverage)
}

func (h *Handler) plannerWeekStart(r *http.Request) (time.Time, error) {
	if raw := r.URL.Query().Get("week_start"); raw != "" {
		weekFor, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, err
		}
		return domain.WeekStart(weekFor), nil
	}
	return domain.WeekStart(time.Now()), nil
}

// ExportPlannerGrid renders the grid as a downloadable file without
// publishing it, so a week in progress can still be shared.
func (h *Handler) ExportPlannerGrid(w http.ResponseWriter, r *http.Request) {
	grid := r.Context().Value(GridCtx).(*planner.Grid)

	weekStart, err := h.plannerWeekStart(r)
	if err != nil {
		h.errorResponse(w, r, "week_start must be an ISO date (2006-01-02)")
		return
	}

	shifts, err := grid.Compile(0, h.store)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	schedule := &domain.WeeklySchedule{
		WeekStart: weekStart,
		WeekEnd:   domain.WeekEnd(weekStart),
		Status:    domain.StatusDraft,
	}

	h.writeExport(w, r, schedule, shifts)
}

// PublishPlannerGrid commits the grid as the shop's published schedule.
// Compilation and validation happen before anything is written; any
// previously published schedule is archived so at most one schedule is
// live.
func (h *Handler) PublishPlannerGrid(w http.ResponseWriter, r *http.Request) {
	grid := r.Context().Value(GridCtx).(*planner.Grid)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		WeekStart string `json:"week_start" validate:"required"`
		Notes     string `json:"notes" validate:"max=500"`
	}
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	weekFor, err := time.Parse("2006-01-02", req.WeekStart)
	if err != nil {
		h.errorResponse(w, r, "week_start must be an ISO date (2006-01-02)")
		return
	}
	weekStart := domain.WeekStart(weekFor)

	shifts, err := grid.Compile(0, h.store)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	if err := utils.ValidateShifts(shifts); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.ArchivePublishedSchedules(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	schedule := &domain.WeeklySchedule{
		WeekStart: weekStart,
		WeekEnd:   domain.WeekEnd(weekStart),
		Status:    domain.StatusPublished,
		CreatedBy: myInfo.FullName,
		Notes:     req.Notes,
	}
	if err := h.repository.CreateSchedule(schedule); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.repository.ReplaceScheduleShifts(schedule.ID, shifts); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	schedule.Shifts = shifts

	if err := h.store.LoadSchedules(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.notifySchedulePublished(schedule)

	h.successResponse(w, r, "schedule published", schedule)
}

// notifySchedulePublished queues one notification per active barista
// with an email address. Publishing never fails because the broker is
// down; failures are only logged.
func (h *Handler) notifySchedulePublished(schedule *domain.WeeklySchedule) {
	if h.notifyChannel == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	for _, b := range h.store.Baristas() {
		if !b.IsActive || b.Email == "" {
			continue
		}

		msg := domain.MailMessage{
			Type: "schedule_published",
			To:   b.Email,
			Data: domain.SchedulePublishedMailData{
				FullName:  b.FullName,
				WeekStart: schedule.WeekStart.Format("2006-01-02"),
				WeekEnd:   schedule.WeekEnd.Format("2006-01-02"),
				Notes:     schedule.Notes,
			},
		}
		body, err := json.Marshal(msg)
		if err != nil {
			slog.Error("failed to marshal notification", "error", err)
			continue
		}

		err = h.notifyChannel.PublishWithContext(ctx, "", "notify_queue", false, false, amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
		if err != nil {
			slog.Error("failed to queue notification", "to", b.Email, "error", err)
		}
	}
}
