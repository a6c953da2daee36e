package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/fishmasters/fishmasters-api/docs"
	v1 "github.com/fishmasters/fishmasters-api/internal/api/handler/v1"
	"github.com/fishmasters/fishmasters-api/internal/api/middleware"
	"github.com/fishmasters/fishmasters-api/internal/config"
	"github.com/fishmasters/fishmasters-api/internal/repository"
	"github.com/fishmasters/fishmasters-api/internal/repository/dao"
	"github.com/fishmasters/fishmasters-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	fishingHandler := s.initFishingHandler(db)
	catchHandler := s.initCatchHandler(db)
	fishHandler := s.initFishHandler(db)
	waterHandler := s.initWaterHandler(db)
	discussionHandler := s.initDiscussionHandler(db)
	leaderboardHandler := s.initLeaderboardHandler(db)
	s.MountHandlers(authHandler, fishingHandler, catchHandler, fishHandler, waterHandler, discussionHandler, leaderboardHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	fisherDAO := dao.NewFisherDAO(db)
	repo := repository.NewFisherRepository(fisherDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initFishingHandler(db *gorm.DB) *v1.FishingHandler {
	sessionRepo := repository.NewSessionRepository(dao.NewSessionDAO(db))
	waterRepo := repository.NewWaterRepository(dao.NewWaterDAO(db))
	svc := service.NewSessionService(sessionRepo, waterRepo)
	catchSvc := s.initCatchService(db)
	handler := v1.NewFishingHandler(svc, catchSvc)

	return handler
}

func (s *Server) initCatchHandler(db *gorm.DB) *v1.CatchHandler {
	handler := v1.NewCatchHandler(s.initCatchService(db))

	return handler
}

func (s *Server) initCatchService(db *gorm.DB) *service.CatchService {
	catchRepo := repository.NewCatchRepository(dao.NewCatchDAO(db))
	sessionRepo := repository.NewSessionRepository(dao.NewSessionDAO(db))
	speciesRepo := repository.NewSpeciesRepository(dao.NewSpeciesDAO(db))

	return service.NewCatchService(catchRepo, sessionRepo, speciesRepo)
}

func (s *Server) initFishHandler(db *gorm.DB) *v1.FishHandler {
	repo := repository.NewSpeciesRepository(dao.NewSpeciesDAO(db))
	svc := service.NewSpeciesService(repo)
	handler := v1.NewFishHandler(svc)

	return handler
}

func (s *Server) initWaterHandler(db *gorm.DB) *v1.WaterHandler {
	repo := repository.NewWaterRepository(dao.NewWaterDAO(db))
	svc := service.NewWaterService(repo)
	handler := v1.NewWaterHandler(svc)

	return handler
}

func (s *Server) initDiscussionHandler(db *gorm.DB) *v1.DiscussionHandler {
	repo := repository.NewDiscussionRepository(dao.NewDiscussionDAO(db))
	waterRepo := repository.NewWaterRepository(dao.NewWaterDAO(db))
	svc := service.NewDiscussionService(repo, waterRepo)
	handler := v1.NewDiscussionHandler(svc)

	return handler
}

func (s *Server) initLeaderboardHandler(db *gorm.DB) *v1.LeaderboardHandler {
	repo := repository.NewFisherRepository(dao.NewFisherDAO(db))
	svc := service.NewFisherService(repo)
	handler := v1.NewLeaderboardHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	fishingHandler *v1.FishingHandler,
	catchHandler *v1.CatchHandler,
	fishHandler *v1.FishHandler,
	waterHandler *v1.WaterHandler,
	discussionHandler *v1.DiscussionHandler,
	leaderboardHandler *v1.LeaderboardHandler,
) {
	auth := s.Router.Group("/auth")
	{
		auth.POST("/register", authHandler.HandleRegister)
		auth.POST("/login", authHandler.HandleLogin)
		auth.POST("/update-photo", authHandler.HandleUpdatePhoto)
	}

	fishing := s.Router.Group("/api/fishing")
	{
		fishing.POST("/start", fishingHandler.HandleStartFishing)
		fishing.POST("/end", fishingHandler.HandleEndFishing)
		fishing.POST("/end/:sessionID", fishingHandler.HandleEndFishingByID)
		fishing.POST("/add-caught-fish", fishingHandler.HandleAddCaughtFish)
		fishing.GET("/fisher/:email", fishingHandler.HandleGetFishingsByFisher)
		fishing.GET("/:sessionID", fishingHandler.HandleGetFishing)
	}

	fish := s.Router.Group("/api/fish")
	{
		fish.POST("/create", fishHandler.HandleCreateFish)
		fish.GET("/all", fishHandler.HandleGetAllFish)
		fish.GET("/caught/:sessionID", catchHandler.HandleGetCaughtFish)
	}

	s.Router.POST("/api/caught-fish", catchHandler.HandleCreateCaughtFish)

	water := s.Router.Group("/api/water")
	{
		water.POST("/create", waterHandler.HandleCreateWater)
		water.GET("/all", waterHandler.HandleGetAllWaters)
		water.GET("/:waterID", waterHandler.HandleGetWater)
	}

	discussion := s.Router.Group("/api/discussion")
	{
		discussion.POST("/messages/createMessage", discussionHandler.HandleCreateMessage)
		discussion.GET("/messages/:discussionID", discussionHandler.HandleGetMessages)
		discussion.POST("/:waterID", discussionHandler.HandleCreateDiscussion)
	}

	leaderboard := s.Router.Group("/api/leaderboard")
	{
		leaderboard.GET("/top", leaderboardHandler.HandleGetTopFishers)
		leaderboard.GET("/all", leaderboardHandler.HandleGetAllFishers)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "FishMasters API"
	docs.SwaggerInfo.Description = "Fishing-activity tracking backend."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
