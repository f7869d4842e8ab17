package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/bizpulse/bizpulse-backend-go/internal/handler/http/middleware"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/jwt"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/permission"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env                   string
	FrontendURL           string
	AuthRequestsPerMinute int
}

type Handlers struct {
	Auth        AuthHandler
	User        UserHandler
	Business    BusinessHandler
	Navigation  NavigationHandler
	Transaction TransactionHandler
	Dashboard   DashboardHandler
	Invitation  InvitationHandler
	Team        TeamHandler
	Schedule    ScheduleHandler
	Payroll     PayrollHandler
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, resolver *permission.Resolver, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bizpulse"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			// Credential endpoints are brute-forceable; throttle by IP.
			r.Use(httprate.LimitByIP(cfg.AuthRequestsPerMinute, time.Minute))

			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Invitation preview is public: the invitee may not have an account.
		r.Get("/invitations/preview/{token}", h.Invitation.Preview)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/me", func(r chi.Router) {
				r.Get("/", h.User.GetProfile)
				r.Put("/", h.User.UpdateProfile)
			})

			r.Route("/navigation", func(r chi.Router) {
				r.Get("/", h.Navigation.Get)
				r.Post("/refresh", h.Navigation.Refresh)
				r.Post("/select-business", h.Navigation.SelectBusiness)
			})

			r.Route("/businesses", func(r chi.Router) {
				r.Get("/", h.Business.List)
				r.Post("/", h.Business.Create)
			})

			r.Post("/invitations/accept", h.Invitation.Accept)

			// Requires a selected business; role claims are present from here on.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireBusiness)

				r.Route("/business", func(r chi.Router) {
					r.Get("/", h.Business.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireCapability(resolver, user.CapabilityBusinessManage))
						r.Put("/", h.Business.Update)
						r.Delete("/", h.Business.Delete)
					})
				})

				r.Route("/dashboard", func(r chi.Router) {
					r.With(middleware.RequireCapability(resolver, user.CapabilityDashboardView)).
						Get("/", h.Dashboard.Overview)
					r.Get("/activity", h.Dashboard.RecentActivity)
				})

				r.Route("/transactions", func(r chi.Router) {
					r.With(middleware.RequireCapability(resolver, user.CapabilityTransactionCreate)).
						Post("/", h.Transaction.Create)
					r.Get("/", h.Transaction.List)
					r.Get("/{transactionID}", h.Transaction.Get)
					r.With(middleware.RequireCapability(resolver, user.CapabilityTransactionEdit)).
						Put("/{transactionID}", h.Transaction.Update)
					r.With(middleware.RequireCapability(resolver, user.CapabilityTransactionDelete)).
						Delete("/{transactionID}", h.Transaction.Delete)
				})

				r.Route("/team", func(r chi.Router) {
					r.With(middleware.RequireCapability(resolver, user.CapabilityTeamView)).
						Get("/", h.Team.List)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireCapability(resolver, user.CapabilityTeamManage))
						r.Put("/{memberID}/role", h.Team.ChangeRole)
						r.Delete("/{memberID}", h.Team.Remove)
					})
				})

				r.Route("/invitations", func(r chi.Router) {
					r.Use(middleware.RequireCapability(resolver, user.CapabilityTeamInvite))
					r.Post("/", h.Invitation.Create)
					r.Get("/", h.Invitation.List)
					r.Delete("/{invitationID}", h.Invitation.Revoke)
				})

				r.Route("/schedule", func(r chi.Router) {
					r.Route("/shifts", func(r chi.Router) {
						r.With(middleware.RequireCapability(resolver, user.CapabilityScheduleView)).
							Get("/", h.Schedule.ListShifts)

						r.Group(func(r chi.Router) {
							r.Use(middleware.RequireCapability(resolver, user.CapabilityScheduleManage))
							r.Post("/", h.Schedule.CreateShift)
							r.Delete("/{shiftID}", h.Schedule.DeleteShift)
						})
					})

					r.Route("/time-off", func(r chi.Router) {
						r.With(middleware.RequireCapability(resolver, user.CapabilityTimeOffRequest)).
							Post("/", h.Schedule.RequestTimeOff)
						r.With(middleware.RequireCapability(resolver, user.CapabilityTimeOffApprove)).
							Get("/", h.Schedule.ListTimeOff)
						r.With(middleware.RequireCapability(resolver, user.CapabilityTimeOffApprove)).
							Put("/{requestID}", h.Schedule.DecideTimeOff)
					})
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Use(middleware.RequireCapability(resolver, user.CapabilityPayrollView))
					r.Get("/runs", h.Payroll.ListRuns)
					r.Get("/runs/{runID}", h.Payroll.GetRun)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireCapability(resolver, user.CapabilityPayrollRun))
						r.Post("/runs", h.Payroll.CreateRun)
						r.Post("/runs/{runID}/finalize", h.Payroll.FinalizeRun)
					})
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return r
}
