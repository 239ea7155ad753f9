package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

// GetAllBaristas serves from the roster store, not the database, so the
// dashboard keeps working off the seed roster when the database is down.
func (h *Handler) GetAllBaristas(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "barista roster", h.store.Baristas())
}

func (h *Handler) GetBarista(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid barista ID")
		return
	}

	barista, ok := h.store.BaristaByID(id)
	if !ok {
		h.errorResponse(w, r, "barista not found")
		return
	}

	h.successResponse(w, r, "barista info", barista)
}

func (h *Handler) CreateBarista(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName        string             `json:"full_name" validate:"required,max=100"`
		Email           string             `json:"email" validate:"omitempty,email"`
		Phone           string             `json:"phone" validate:"omitempty,max=30"`
		EmploymentType  string             `json:"employment_type" validate:"required,oneof=full-time part-time"`
		MaxWeeklyHours  float64            `json:"max_weekly_hours" validate:"required,gt=0,lte=60"`
		PreferredShifts []domain.ShiftType `json:"preferred_shifts"`
		Skills          []string           `json:"skills"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.PreferredShifts == nil {
		req.PreferredShifts = []domain.ShiftType{}
	}
	if req.Skills == nil {
		req.Skills = []string{}
	}

	barista := &domain.Barista{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		EmploymentType:  domain.EmploymentType(req.EmploymentType),
		MaxWeeklyHours:  req.MaxWeeklyHours,
		PreferredShifts: req.PreferredShifts,
		Skills:          req.Skills,
	}

	if err := h.repository.CreateBarista(barista); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.ConstraintName {
			case "baristas_full_name_key":
				h.errorResponse(w, r, "a barista with this name already exists")
			case "baristas_email_key":
				h.errorResponse(w, r, "a barista with this email already exists")
			default:
				h.internalServerError(w, r, err)
			}
		} else {
			h.internalServerError(w, r, err)
		}
		return
	}

	// refresh the in-memory roster so the new barista is immediately
	// draggable in the planner
	h.store.LoadBaristas()

	h.successResponse(w, r, "barista created", barista)
}

func (h *Handler) UpdateBarista(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid barista ID")
		return
	}

	barista, err := h.repository.GetBaristaByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "barista not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	var req struct {
		FullName       *string  `json:"full_name" validate:"omitempty,max=100"`
		Email          *string  `json:"email" validate:"omitempty,email"`
		Phone          *string  `json:"phone" validate:"omitempty,max=30"`
		EmploymentType *string  `json:"employment_type" validate:"omitempty,oneof=full-time part-time"`
		MaxWeeklyHours *float64 `json:"max_weekly_hours" validate:"omitempty,gt=0,lte=60"`
		IsActive       *bool    `json:"is_active"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FullName != nil {
		barista.FullName = *req.FullName
	}
	if req.Email != nil {
		barista.Email = *req.Email
	}
	if req.Phone != nil {
		barista.Phone = *req.Phone
	}
	if req.EmploymentType != nil {
		barista.EmploymentType = domain.EmploymentType(*req.EmploymentType)
	}
	if req.MaxWeeklyHours != nil {
		barista.MaxWeeklyHours = *req.MaxWeeklyHours
	}
	if req.IsActive != nil {
		barista.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateBarista(barista); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "barista was modified by someone else, reload and retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.store.LoadBaristas()

	h.successResponse(w, r, "barista updated", barista)
}
