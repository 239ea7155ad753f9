package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
	"github.com/Derda24/wodenstockai-sub000/internal/export"
	"github.com/Derda24/wodenstockai-sub000/internal/generator"
	"github.com/Derda24/wodenstockai-sub000/internal/planner"
)

func (h *Handler) GetAllSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.repository.GetAllSchedules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "all schedules", schedules)
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.WeeklySchedule)
	h.successResponse(w, r, "schedule info", schedule)
}

func (h *Handler) GetScheduleShifts(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.WeeklySchedule)

	shifts, err := h.repository.GetShiftsByScheduleID(schedule.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule shifts", shifts)
}

// GenerateSchedule submits captured preferences to the external
// generation service. The week may be any day; it is resolved to its
// Monday before the request leaves. Only one request can be in flight.
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeekStart   string                       `json:"week_start" validate:"required"`
		Preferences map[int64]*domain.Preference `json:"preferences"`
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

	prefs := planner.PreferenceSet(req.Preferences)
	if prefs == nil {
		prefs = planner.NewPreferenceSet(h.store.Baristas())
	} else if err := prefs.Validate(); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	resp, err := h.adapter.Generate(r.Context(), weekFor, prefs)
	if err != nil {
		switch {
		case errors.Is(err, generator.ErrRequestInFlight):
			h.errorResponse(w, r, "a generation request is already in progress, please wait")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule generated", resp)
}

// ExportSchedule streams a persisted schedule as an attachment. The
// file is rendered into memory first so a failing render never sends a
// truncated download.
func (h *Handler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.WeeklySchedule)

	shifts, err := h.repository.GetShiftsByScheduleID(schedule.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeExport(w, r, schedule, shifts)
}

func (h *Handler) writeExport(w http.ResponseWriter, r *http.Request, schedule *domain.WeeklySchedule, shifts []domain.Shift) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	baristas := h.store.Baristas()
	buf := &bytes.Buffer{}

	var contentType, ext string
	switch format {
	case "csv":
		contentType, ext = export.CSVContentType, "csv"
		if err := export.WriteCSV(buf, schedule, shifts, baristas); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	case "xlsx":
		contentType, ext = export.XLSXContentType, "xlsx"
		if err := export.WriteXLSX(buf, schedule, shifts, baristas); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	default:
		h.errorResponse(w, r, "format must be csv or xlsx")
		return
	}

	filename := export.FileName(h.config.Export.FilenamePrefix, schedule.WeekStart, ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logInternalServerError(r, err)
	}
}
