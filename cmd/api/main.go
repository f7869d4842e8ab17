package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bizpulse/bizpulse-backend-go/internal/config"
	appHTTP "github.com/bizpulse/bizpulse-backend-go/internal/handler/http"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/cron"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/database"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/email"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/jwt"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/oauth"
	"github.com/bizpulse/bizpulse-backend-go/internal/repository/postgresql"
	authService "github.com/bizpulse/bizpulse-backend-go/internal/service/auth"
	businessService "github.com/bizpulse/bizpulse-backend-go/internal/service/business"
	dashboardService "github.com/bizpulse/bizpulse-backend-go/internal/service/dashboard"
	invitationService "github.com/bizpulse/bizpulse-backend-go/internal/service/invitation"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/navigation"
	"github.com/bizpulse/bizpulse-backend-go/internal/service/permission"
	payrollService "github.com/bizpulse/bizpulse-backend-go/internal/service/payroll"
	scheduleService "github.com/bizpulse/bizpulse-backend-go/internal/service/schedule"
	teamService "github.com/bizpulse/bizpulse-backend-go/internal/service/team"
	transactionService "github.com/bizpulse/bizpulse-backend-go/internal/service/transaction"
	userService "github.com/bizpulse/bizpulse-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	businessRepo := postgresql.NewBusinessRepository(db)
	membershipRepo := postgresql.NewMembershipRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	timeOffRepo := postgresql.NewTimeOffRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	resolver := permission.NewResolver()
	registry := navigation.NewRegistry(
		navigation.NewIdentityProvider(userRepo),
		navigation.NewDataStore(membershipRepo, businessRepo),
		resolver,
	)

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	userSvc := userService.NewUserService(userRepo)
	businessSvc := businessService.NewBusinessService(db, businessRepo, membershipRepo)
	transactionSvc := transactionService.NewTransactionService(transactionRepo)
	dashboardSvc := dashboardService.NewDashboardService(transactionRepo, resolver)
	invitationSvc := invitationService.NewInvitationService(db, cfg.Invitation, invitationRepo, membershipRepo, emailService, resolver)
	teamSvc := teamService.NewTeamService(membershipRepo)
	scheduleSvc := scheduleService.NewScheduleService(shiftRepo, timeOffRepo, resolver)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, membershipRepo)

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtService, authSvc, googleService, registry, cfg.App.FrontendURL),
		User:        appHTTP.NewUserHandler(userSvc),
		Business:    appHTTP.NewBusinessHandler(businessSvc, registry),
		Navigation:  appHTTP.NewNavigationHandler(registry, jwtService),
		Transaction: appHTTP.NewTransactionHandler(transactionSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
		Invitation:  appHTTP.NewInvitationHandler(invitationSvc, registry),
		Team:        appHTTP.NewTeamHandler(teamSvc, registry),
		Schedule:    appHTTP.NewScheduleHandler(scheduleSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Env:                   cfg.App.Env,
		FrontendURL:           cfg.App.FrontendURL,
		AuthRequestsPerMinute: cfg.RateLimit.AuthRequestsPerMinute,
	}, jwtService, resolver, handlers)

	scheduler := cron.NewScheduler()
	cron.NewInvitationJobs(invitationRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
