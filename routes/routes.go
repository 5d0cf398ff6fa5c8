package routes

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spa-admin/config"
	"spa-admin/controllers"
	"spa-admin/utils"
)

func SetupRouter(cfg *config.Config, base *controllers.Base) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", config.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", utils.RedirectHdr, config.RequestIDHeader},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return slices.Contains(cfg.CORSOrigins, origin)
		},
	}))

	r.Use(config.PerformanceLogger(base.Logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authController := controllers.AuthController{Base: base}
	auth := r.Group("/auth")
	{
		auth.POST("/google", authController.GoogleLogin)
		auth.POST("/logout", authController.Logout)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(base.Now))
	{
		appointmentController := controllers.AppointmentController{Base: base}
		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentController.GetAppointments)
			appointments.PATCH("/:id/approve", appointmentController.Approve)
			appointments.PATCH("/:id/cancel", appointmentController.Cancel)
			appointments.PATCH("/:id/complete", appointmentController.Complete)
			appointments.PATCH("/:id/reschedule", appointmentController.Reschedule)
			appointments.GET("/:id/payments", appointmentController.GetPayments)
		}
		api.POST("/payments/cash", appointmentController.RecordCashPayment)

		serviceController := controllers.ServiceController{Base: base}
		services := api.Group("/services")
		{
			services.GET("", serviceController.GetServices)
			services.POST("", serviceController.CreateService)
			services.PATCH("/:id", serviceController.UpdateService)
			services.DELETE("/:id", serviceController.DeleteService)
			services.PATCH("/:id/status", serviceController.SetServiceStatus)
		}

		settingsController := controllers.SettingsController{Base: base}
		settings := api.Group("/settings")
		{
			settings.GET("/spa", settingsController.GetSpaSettings)
			settings.PUT("/spa", settingsController.SaveSpaSettings)
			settings.GET("/homepage", settingsController.GetHomepageSettings)
			settings.PUT("/homepage", settingsController.SaveHomepageSettings)
		}

		userController := controllers.UserController{Base: base}
		users := api.Group("/users")
		{
			users.GET("", userController.GetUsers)
			users.PATCH("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		dashboardController := controllers.DashboardController{Base: base}
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		reportController := controllers.ReportController{Base: base}
		api.GET("/reports/:kind", reportController.GetReport)

		logController := controllers.LogController{Base: base}
		api.GET("/logs", logController.GetActionLogs)
	}

	return r
}
