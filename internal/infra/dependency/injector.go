// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/chronyx/backend/config"
	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/application/usecase/auth"
	"github.com/chronyx/backend/internal/application/usecase/discovery"
	"github.com/chronyx/backend/internal/application/usecase/record"
	"github.com/chronyx/backend/internal/application/usecase/tax"
	"github.com/chronyx/backend/internal/infra/server/router"
	"github.com/chronyx/backend/internal/integration/adapters"
	"github.com/chronyx/backend/internal/integration/email"
	"github.com/chronyx/backend/internal/integration/email/templates"
	"github.com/chronyx/backend/internal/integration/entrypoint/controller"
	"github.com/chronyx/backend/internal/integration/entrypoint/middleware"
	"github.com/chronyx/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	calculationRepo := persistence.NewCalculationRepository(db)
	insuranceRepo := persistence.NewInsuranceRepository(db)
	loanRepo := persistence.NewLoanRepository(db)
	suggestionRepo := persistence.NewSuggestionRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	ruleRepo := persistence.NewRuleRepository(db)
	if cfg.Redis.CacheEnabled {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		opts.DB = cfg.Redis.DB
		client := redis.NewClient(opts)
		ruleRepo = persistence.NewCachedRuleRepository(ruleRepo, client, cfg.Redis.RuleCacheTTL)
		slog.Info("Tax rule cache enabled", "ttl", cfg.Redis.RuleCacheTTL)
	}

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	var advisor adapter.DeductionAdvisor
	if cfg.AI.GeminiAPIKey != "" {
		advisor = adapters.NewGeminiAdvisor(cfg.AI.GeminiAPIKey)
		slog.Info("Gemini deduction advisor enabled")
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create tax use cases
	calculateUseCase := tax.NewCalculateTaxUseCase(ruleRepo, calculationRepo, userRepo, emailService)
	compareUseCase := tax.NewCompareRegimesUseCase(calculateUseCase)
	listYearsUseCase := tax.NewListYearsUseCase(ruleRepo)
	historyUseCase := tax.NewGetHistoryUseCase(calculationRepo)

	// Create discovery use cases
	discoverUseCase := discovery.NewDiscoverDeductionsUseCase(
		ruleRepo,
		insuranceRepo,
		loanRepo,
		suggestionRepo,
		advisor,
	)
	getSuggestionsUseCase := discovery.NewGetSuggestionsUseCase(suggestionRepo)
	resolveSuggestionUseCase := discovery.NewResolveSuggestionUseCase(suggestionRepo)

	// Create record use cases
	createPolicyUseCase := record.NewCreateInsurancePolicyUseCase(insuranceRepo)
	listPoliciesUseCase := record.NewListInsurancePoliciesUseCase(insuranceRepo)
	deletePolicyUseCase := record.NewDeleteInsurancePolicyUseCase(insuranceRepo)
	createLoanUseCase := record.NewCreateLoanUseCase(loanRepo)
	listLoansUseCase := record.NewListLoansUseCase(loanRepo)
	deleteLoanUseCase := record.NewDeleteLoanUseCase(loanRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	taxController := controller.NewTaxController(
		calculateUseCase,
		compareUseCase,
		listYearsUseCase,
		historyUseCase,
	)

	discoveryController := controller.NewDiscoveryController(
		discoverUseCase,
		getSuggestionsUseCase,
		resolveSuggestionUseCase,
	)

	insuranceController := controller.NewInsuranceController(
		createPolicyUseCase,
		listPoliciesUseCase,
		deletePolicyUseCase,
	)

	loanController := controller.NewLoanController(
		createLoanUseCase,
		listLoansUseCase,
		deleteLoanUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		taxController,
		discoveryController,
		insuranceController,
		loanController,
		loginRateLimiter,
		authMiddleware,
	)

	// Create email worker when enabled and a sender is configured
	var worker *email.Worker
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, err
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		worker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	}

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: worker,
	}, nil
}
