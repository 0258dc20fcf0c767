package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/collection"
	mediaUC "github.com/khoahotran/portfolio-api/internal/application/usecase/media"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/certificate"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/record"
	"github.com/khoahotran/portfolio-api/internal/domain/schema"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type Dependencies struct {
	Client record.Client
	Events service.EventPublisher
	// Uploader is optional; /api/assets is only mounted when it is set.
	Uploader service.Uploader
	Origins  []string
	Logger   logger.Logger
}

func NewRouter(deps Dependencies) *gin.Engine {
	log := deps.Logger

	// Use Cases
	profileUseCase := profileUC.NewProfileUseCase(deps.Client, deps.Events, log)
	loginUseCase := authUC.NewLoginUseCase(profileUseCase, log)
	newCollection := func(s schema.Schema) *collection.CollectionUseCase {
		return collection.NewCollectionUseCase(deps.Client, s, deps.Events, log)
	}

	// HTTP Handlers
	profileHandler := NewProfileHandler(profileUseCase, log)
	authHandler := NewAuthHandler(loginUseCase, log)
	projectHandler := NewCollectionHandler(newCollection(project.Schema), CollectionOptions{}, log)
	certificateHandler := NewCollectionHandler(newCollection(certificate.Schema), CollectionOptions{}, log)
	owned := CollectionOptions{RequireProfileID: true, SingleCreate: true}
	experienceHandler := NewCollectionHandler(newCollection(profile.ExperienceSchema), owned, log)
	interestHandler := NewCollectionHandler(newCollection(profile.InterestSchema), owned, log)
	serviceHandler := NewCollectionHandler(newCollection(profile.ServiceSchema), owned, log)

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), CORS(deps.Origins), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Portfolio Backend is running"})
		})
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.GET("/profile", profileHandler.GetProfile)
		api.POST("/profile", profileHandler.CreateProfile)
		api.PUT("/profile/:id", profileHandler.UpdateProfile)
		api.POST("/login", authHandler.Login)

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.PUT("/:id", projectHandler.Update)
			projects.DELETE("/:id", projectHandler.Delete)
		}

		certificates := api.Group("/certificates")
		{
			certificates.GET("", certificateHandler.List)
			certificates.POST("", certificateHandler.Create)
			certificates.GET("/:slug", certificateHandler.GetBy(certificate.ColumnSlug, "slug"))
			certificates.PUT("/:id", certificateHandler.Update)
			certificates.DELETE("/:id", certificateHandler.Delete)
		}

		for path, h := range map[string]*CollectionHandler{
			"/experiences": experienceHandler,
			"/interests":   interestHandler,
			"/services":    serviceHandler,
		} {
			g := api.Group(path)
			g.GET("", h.List)
			g.POST("", h.Create)
			g.DELETE("/:id", h.Delete)
		}

		if deps.Uploader != nil {
			mediaHandler := NewMediaHandler(mediaUC.NewUploadAssetUseCase(deps.Uploader, log), log)
			api.POST("/assets", mediaHandler.UploadAsset)
		}
	}

	return router
}
