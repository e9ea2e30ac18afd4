package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/config"
	"github.com/jestatech/jts-site/internal/constants"
	"github.com/jestatech/jts-site/internal/database"
	"github.com/jestatech/jts-site/internal/handlers"
	"github.com/jestatech/jts-site/internal/middleware"
	"github.com/jestatech/jts-site/internal/repository"
	"github.com/jestatech/jts-site/internal/services"
	"github.com/jestatech/jts-site/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Printf("Warning: failed to add indexes: %v", err)
	}

	// Initialize file storage for project uploads
	store, err := storage.New(cfg.UploadBaseDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// CORS for the admin SPA assets and API consumers
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = false
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	sessionStore, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// HTML templates for the public site and admin pages
	if cfg.TemplatesGlob != "" {
		r.LoadHTMLGlob(cfg.TemplatesGlob)
	}

	// Repositories
	db := database.GetDB()
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	contactRepo := repository.NewContactFormRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	projectService := services.NewProjectService(projectRepo, store)
	taskService := services.NewTaskService(taskRepo)
	userService := services.NewUserService(userRepo)
	billingService := services.NewBillingService(billingRepo)
	contactService := services.NewContactFormService(contactRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	authService := services.NewAuthService(userRepo, cfg.AdminBypassLogin)
	pdfService := services.NewInvoicePdfService()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	pageHandler := handlers.NewPageHandler()
	publicHandler := handlers.NewPublicHandler(projectService)
	projectHandler := handlers.NewProjectHandler(projectService, store)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)
	billingHandler := handlers.NewBillingHandler(billingService, pdfService)
	contactHandler := handlers.NewContactHandler(contactService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Jesta Tech site is running",
		})
	})

	// Public site pages
	pageHandler.RegisterPublicPages(r)

	// Uploaded files are mutable (files can be replaced or removed), so
	// force revalidation instead of letting browsers cache them.
	uploadsGroup := r.Group("/uploads")
	uploadsGroup.Use(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Next()
	})
	uploadsGroup.Static("", cfg.UploadBaseDir)

	// Admin pages
	admin := r.Group("/admin")
	{
		admin.GET("", pageHandler.AdminHome)
		admin.GET("/login", pageHandler.LoginPage)
		admin.POST("/login", authHandler.Login)
		admin.GET("/logout", authHandler.Logout)
		admin.GET("/api/current-user", middleware.RequireAdmin(), authHandler.GetCurrentUser)

		pages := admin.Group("")
		pages.Use(middleware.RequireAdminPage())
		pageHandler.RegisterAdminPages(pages)
	}

	// API routes
	api := r.Group("/api")
	{
		// Public project endpoints for the marketing pages
		api.GET("/projects/latest", publicHandler.LatestProjects)
		api.GET("/projects/all", publicHandler.AllProjects)

		// Contact form intake (public) and submissions admin
		contact := api.Group("/contact")
		{
			contact.POST("", contactHandler.Submit)

			contactAdmin := contact.Group("/admin")
			contactAdmin.Use(middleware.RequireAdmin())
			{
				contactAdmin.GET("/submissions", contactHandler.ListSubmissions)
				contactAdmin.GET("/submissions/stats", contactHandler.GetSubmissionStats)
				contactAdmin.GET("/submissions/filter", contactHandler.FilterSubmissions)
				contactAdmin.GET("/submissions/:id", contactHandler.GetSubmission)
				contactAdmin.PUT("/submissions/:id/read", contactHandler.MarkAsRead)
				contactAdmin.PUT("/submissions/:id/unread", contactHandler.MarkAsUnread)
				contactAdmin.DELETE("/submissions/:id", contactHandler.DeleteSubmission)
			}
		}

		// Admin API (protected)
		adminAPI := api.Group("/admin")
		adminAPI.Use(middleware.RequireAdmin())
		{
			projects := adminAPI.Group("/projects")
			{
				projects.GET("", projectHandler.ListProjects)
				projects.POST("/create", projectHandler.CreateProject)
				projects.POST("/upload-files", projectHandler.UploadFiles)
				projects.GET("/verify-file", projectHandler.VerifyFile)
				projects.DELETE("/delete-file", projectHandler.DeleteFile)
				projects.GET("/:id", projectHandler.GetProject)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.DELETE("/delete/:id", projectHandler.DeleteProject)
			}

			tasks := adminAPI.Group("/tasks")
			{
				tasks.GET("", taskHandler.ListTasks)
				tasks.POST("/create", taskHandler.CreateTask)
				tasks.GET("/stats", taskHandler.GetTaskStats)
				tasks.GET("/status/:status", taskHandler.ListTasksByStatus)
				tasks.GET("/priority/:priority", taskHandler.ListTasksByPriority)
				tasks.GET("/:id", taskHandler.GetTask)
				tasks.PUT("/:id", taskHandler.UpdateTask)
				tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
				tasks.DELETE("/delete/:id", taskHandler.DeleteTask)
			}

			users := adminAPI.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.POST("/create", userHandler.CreateUser)
				users.GET("/:id", userHandler.GetUser)
				users.PUT("/:id", userHandler.UpdateUser)
				users.DELETE("/delete/:id", userHandler.DeleteUser)
			}

			billing := adminAPI.Group("/billing")
			{
				billing.GET("", billingHandler.ListBillings)
				billing.POST("/create", billingHandler.CreateBilling)
				billing.GET("/:id", billingHandler.GetBilling)
				billing.GET("/:id/pdf", billingHandler.DownloadInvoicePdf)
				billing.PUT("/:id", billingHandler.UpdateBilling)
				billing.DELETE("/delete/:id", billingHandler.DeleteBilling)
			}

			settings := adminAPI.Group("/settings")
			{
				settings.GET("/:userId", settingsHandler.GetSettings)
				settings.PUT("/:userId", settingsHandler.UpdateSettings)
			}
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
