package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/Derda24/wodenstockai-sub000/internal/config"
	"github.com/Derda24/wodenstockai-sub000/internal/domain"
	"github.com/Derda24/wodenstockai-sub000/internal/generator"
	"github.com/Derda24/wodenstockai-sub000/internal/repository"
	"github.com/Derda24/wodenstockai-sub000/internal/roster"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	store         *roster.Store
	adapter       *generator.Adapter
	translator    ut.Translator
	notifyChannel *amqp.Channel
	redisClient   *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, store *roster.Store, adapter *generator.Adapter, notifyCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		store:         store,
		adapter:       adapter,
		translator:    trans,
		notifyChannel: notifyCh,
		redisClient:   rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// everything below requires a logged-in dashboard account
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.myInfo).Get("/me", h.GetMyInfo)

		r.Route("/api", func(r chi.Router) {
			r.Get("/advisory", h.GetAdvisory)

			r.Route("/baristas", func(r chi.Router) {
				r.Get("/", h.GetAllBaristas)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Post("/", h.CreateBarista)
				r.Get("/{id}", h.GetBarista)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Patch("/{id}", h.UpdateBarista)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", h.GetAllSchedules)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Post("/generate", h.GenerateSchedule)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.schedule)
					r.Get("/", h.GetSchedule)
					r.Get("/shifts", h.GetScheduleShifts)
					r.Get("/export", h.ExportSchedule)
				})
			})

			r.Get("/planner/catalog", h.GetPlannerCatalog)

			r.Route("/planner/sessions", func(r chi.Router) {
				r.Post("/", h.CreatePlannerSession)
				r.Route("/{sid}", func(r chi.Router) {
					r.Use(h.plannerSession)
					r.Get("/", h.GetPlannerGrid)
					r.Post("/drops", h.ApplyPlannerDrop)
					r.Post("/removals", h.ApplyPlannerRemoval)
					r.Post("/clear", h.ClearPlannerGrid)
					r.Get("/available", h.GetAvailableBaristas)
					r.Get("/coverage", h.GetPlannerCoverage)
					r.Get("/export", h.ExportPlannerGrid)
					r.With(h.myInfo).With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Post("/publish", h.PublishPlannerGrid)
				})
			})
		})
	})
}
