package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/config"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/catalog"
	"github.com/BruksfildServices01/cesta-amigo/internal/handlers"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/cep"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/payments"
	infraRepo "github.com/BruksfildServices01/cesta-amigo/internal/infra/repository"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/sessions"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/storage"
	"github.com/BruksfildServices01/cesta-amigo/internal/logger"
	"github.com/BruksfildServices01/cesta-amigo/internal/middleware"
	"github.com/BruksfildServices01/cesta-amigo/internal/token"
	ucAppointment "github.com/BruksfildServices01/cesta-amigo/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/cesta-amigo/internal/usecase/auth"
	ucDashboard "github.com/BruksfildServices01/cesta-amigo/internal/usecase/dashboard"
	ucOrder "github.com/BruksfildServices01/cesta-amigo/internal/usecase/order"
	ucProfile "github.com/BruksfildServices01/cesta-amigo/internal/usecase/profile"
	ucReport "github.com/BruksfildServices01/cesta-amigo/internal/usecase/report"
)

// Dependencies são os singletons montados no main.
type Dependencies struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      zerolog.Logger
	Audit    *audit.Dispatcher
	Sessions sessions.Store
	Storage  storage.Store
	Payments payments.Gateway
	Catalog  *catalog.Catalog
	Registry *prometheus.Registry
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	metrics := middleware.NewMetrics(deps.Registry)

	r.Use(
		middleware.RequestID(),
		logger.Middleware(logger.Component(deps.Log, "http")),
		metrics.Middleware(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	profileRepo := infraRepo.NewProfileGormRepository(deps.DB)
	clientRepo := infraRepo.NewClientGormRepository(deps.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB)
	orderRepo := infraRepo.NewOrderGormRepository(deps.DB)
	dashboardRepo := infraRepo.NewDashboardGormRepository(deps.DB)

	tokens := token.NewIssuer(cfg.JWTSecret, 0)
	passwords := ucAuth.DefaultPasswords()
	cepClient := cep.NewClient(cfg.CEPBaseURL, logger.Component(deps.Log, "cep"))
	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRatePerMin)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	signInUC := ucAuth.NewSignIn(profileRepo, tokens, passwords)
	signUpUC := ucAuth.NewSignUp(profileRepo, passwords, nil, deps.Audit)
	createUserUC := ucAuth.NewCreateUser(profileRepo, passwords, nil, deps.Audit)
	signOutUC := ucAuth.NewSignOut(deps.Sessions)
	changePasswordUC := ucAuth.NewChangePassword(profileRepo, passwords, deps.Audit)

	updateMeUC := ucProfile.NewUpdateMe(profileRepo, deps.Audit)
	uploadAvatarUC := ucProfile.NewUploadAvatar(profileRepo, deps.Storage, deps.Audit)
	setActiveUC := ucProfile.NewSetActive(profileRepo, deps.Audit)

	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, deps.Audit)
	agendaUC := ucAppointment.NewGetAgenda(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	orderLog := logger.Component(deps.Log, "orders")
	checkoutUC := ucOrder.NewCheckout(orderRepo, clientRepo, deps.Catalog, deps.Payments, deps.Audit, orderLog)
	listOrdersUC := ucOrder.NewListOrders(orderRepo)
	recentOrdersUC := ucOrder.NewRecentOrders(orderRepo)
	updateStatusUC := ucOrder.NewUpdateStatus(orderRepo, deps.Audit)
	webhookUC := ucOrder.NewPaymentWebhook(orderRepo, deps.Payments, deps.Audit, orderLog)

	buildReportUC := ucReport.NewBuildReport(orderRepo, deps.Catalog)
	exportReportUC := ucReport.NewExportReport(buildReportUC, deps.Storage, logger.Component(deps.Log, "reports"))

	dashboardUC := ucDashboard.NewGetDashboard(dashboardRepo, recentOrdersUC)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(signInUC, signUpUC, createUserUC, signOutUC, changePasswordUC)
	meHandler := handlers.NewMeHandler(profileRepo, updateMeUC, uploadAvatarUC)
	sellerHandler := handlers.NewSellerHandler(profileRepo, setActiveUC)
	clientHandler := handlers.NewClientHandler(clientRepo, profileRepo, deps.Audit)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		createAppointmentUC,
		agendaUC,
		listAppointmentsUC,
		deps.Audit,
	)

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	orderHandler := handlers.NewOrderHandler(checkoutUC, listOrdersUC, recentOrdersUC, updateStatusUC)
	webhookHandler := handlers.NewWebhookHandler(webhookUC)
	reportHandler := handlers.NewReportHandler(buildReportUC, exportReportUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	cepHandler := handlers.NewCEPHandler(cepClient)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// ======================================================
	// 🩺 INFRA
	// ======================================================
	r.GET("/health", healthHandler.Get)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", loginLimiter.Middleware(), authHandler.Login)
		api.POST("/auth/register", loginLimiter.Middleware(), authHandler.Register)

		// ------------------------------
		// 💳 WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/mercadopago", webhookHandler.MercadoPago)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, deps.Sessions, profileRepo, logger.Component(deps.Log, "auth")))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.PUT("/auth/password", authHandler.ChangePassword)
			secured.POST("/users", authHandler.CreateUser)

			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/me", meHandler.UpdateMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)

			secured.GET("/dashboard", dashboardHandler.Get)

			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/agenda", appointmentHandler.Agenda)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// CESTAS / PEDIDOS
			// ------------------------------
			secured.GET("/catalog", catalogHandler.Get)
			secured.POST("/orders", orderHandler.Checkout)
			secured.GET("/orders", orderHandler.List)
			secured.GET("/orders/recent", orderHandler.Recent)
			secured.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

			// ------------------------------
			// RELATÓRIOS
			// ------------------------------
			secured.GET("/reports", reportHandler.Get)
			secured.GET("/reports/export", reportHandler.Export)

			secured.GET("/cep/:cep", cepHandler.Get)

			// ------------------------------
			// 🛡️ ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/sellers", sellerHandler.List)
				admin.PATCH("/sellers/:id/active", sellerHandler.SetActive)
				admin.GET("/admin/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
