package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/mhrytsenko/theatre-booking-api/docs"
	v1 "github.com/mhrytsenko/theatre-booking-api/internal/api/handler/v1"
	"github.com/mhrytsenko/theatre-booking-api/internal/api/middleware"
	"github.com/mhrytsenko/theatre-booking-api/internal/config"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository/dao"
	"github.com/mhrytsenko/theatre-booking-api/internal/service"
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
	userHandler := s.initUserHandler(db)
	actorHandler := s.initActorHandler(db)
	genreHandler := s.initGenreHandler(db)
	playHandler := s.initPlayHandler(db)
	hallHandler := s.initTheatreHallHandler(db)
	performanceHandler := s.initPerformanceHandler(db)
	reservationHandler := s.initReservationHandler(db)
	s.MountHandlers(
		authHandler,
		userHandler,
		actorHandler,
		genreHandler,
		playHandler,
		hallHandler,
		performanceHandler,
		reservationHandler,
		s.initUserService(db),
	)

	return s
}

func (s *Server) initUserService(db *gorm.DB) *service.UserService {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)

	return service.NewUserService(repo)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	handler := v1.NewUserHandler(s.initUserService(db))

	return handler
}

func (s *Server) initActorHandler(db *gorm.DB) *v1.ActorHandler {
	actorDAO := dao.NewActorDAO(db)
	repo := repository.NewActorRepository(actorDAO)
	svc := service.NewActorService(repo)
	handler := v1.NewActorHandler(svc)

	return handler
}

func (s *Server) initGenreHandler(db *gorm.DB) *v1.GenreHandler {
	genreDAO := dao.NewGenreDAO(db)
	repo := repository.NewGenreRepository(genreDAO)
	svc := service.NewGenreService(repo)
	handler := v1.NewGenreHandler(svc)

	return handler
}

func (s *Server) initPlayHandler(db *gorm.DB) *v1.PlayHandler {
	playDAO := dao.NewPlayDAO(db)
	repo := repository.NewPlayRepository(playDAO)
	genreRepo := repository.NewGenreRepository(dao.NewGenreDAO(db))
	actorRepo := repository.NewActorRepository(dao.NewActorDAO(db))
	svc := service.NewPlayService(repo, genreRepo, actorRepo)
	handler := v1.NewPlayHandler(svc)

	return handler
}

func (s *Server) initTheatreHallHandler(db *gorm.DB) *v1.TheatreHallHandler {
	hallDAO := dao.NewTheatreHallDAO(db)
	repo := repository.NewTheatreHallRepository(hallDAO)
	svc := service.NewTheatreHallService(repo)
	handler := v1.NewTheatreHallHandler(svc)

	return handler
}

func (s *Server) initPerformanceHandler(db *gorm.DB) *v1.PerformanceHandler {
	performanceDAO := dao.NewPerformanceDAO(db)
	repo := repository.NewPerformanceRepository(performanceDAO)
	playRepo := repository.NewPlayRepository(dao.NewPlayDAO(db))
	hallRepo := repository.NewTheatreHallRepository(dao.NewTheatreHallDAO(db))
	svc := service.NewPerformanceService(repo, playRepo, hallRepo)
	handler := v1.NewPerformanceHandler(svc)

	return handler
}

func (s *Server) initReservationHandler(db *gorm.DB) *v1.ReservationHandler {
	reservationDAO := dao.NewReservationDAO(db)
	repo := repository.NewReservationRepository(reservationDAO)
	perfRepo := repository.NewPerformanceRepository(dao.NewPerformanceDAO(db))
	svc := service.NewReservationService(repo, perfRepo)
	handler := v1.NewReservationHandler(svc)

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
	userHandler *v1.UserHandler,
	actorHandler *v1.ActorHandler,
	genreHandler *v1.GenreHandler,
	playHandler *v1.PlayHandler,
	hallHandler *v1.TheatreHallHandler,
	performanceHandler *v1.PerformanceHandler,
	reservationHandler *v1.ReservationHandler,
	userSvc *service.UserService,
) {
	const basePath = "/api/v1"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	auth := s.Router.Group(basePath)
	{
		auth.POST("/user/register", authHandler.HandleRegister)
		auth.POST("/user/token-auth",
			middleware.RateLimitPerIP(s.Config.API.TokenRequestsPerMinute),
			authHandler.HandleTokenAuth)
	}

	users := s.Router.Group(basePath, verifyJWT)
	{
		users.GET("/user/me", userHandler.HandleGetMe)
	}

	// Catalog reads are open; anyone can browse what's on.
	catalog := s.Router.Group(basePath)
	{
		catalog.GET("/actors", actorHandler.HandleListActors)
		catalog.GET("/actors/:actorID", actorHandler.HandleGetActor)
		catalog.GET("/genres", genreHandler.HandleListGenres)
		catalog.GET("/genres/:genreID", genreHandler.HandleGetGenre)
		catalog.GET("/plays", playHandler.HandleListPlays)
		catalog.GET("/plays/:playID", playHandler.HandleGetPlay)
		catalog.GET("/theatre_halls", hallHandler.HandleListHalls)
		catalog.GET("/theatre_halls/:hallID", hallHandler.HandleGetHall)
		catalog.GET("/performances", performanceHandler.HandleListPerformances)
		catalog.GET("/performances/:performanceID", performanceHandler.HandleGetPerformance)
	}

	// Catalog and schedule writes are staff only.
	staff := s.Router.Group(basePath, verifyJWT, middleware.StaffOnly(userSvc))
	{
		staff.POST("/actors", actorHandler.HandleCreateActor)
		staff.PUT("/actors/:actorID", actorHandler.HandleUpdateActor)
		staff.DELETE("/actors/:actorID", actorHandler.HandleDeleteActor)
		staff.POST("/genres", genreHandler.HandleCreateGenre)
		staff.PUT("/genres/:genreID", genreHandler.HandleUpdateGenre)
		staff.DELETE("/genres/:genreID", genreHandler.HandleDeleteGenre)
		staff.POST("/plays", playHandler.HandleCreatePlay)
		staff.PUT("/plays/:playID", playHandler.HandleUpdatePlay)
		staff.DELETE("/plays/:playID", playHandler.HandleDeletePlay)
		staff.POST("/theatre_halls", hallHandler.HandleCreateHall)
		staff.PUT("/theatre_halls/:hallID", hallHandler.HandleUpdateHall)
		staff.DELETE("/theatre_halls/:hallID", hallHandler.HandleDeleteHall)
		staff.POST("/performances", performanceHandler.HandleCreatePerformance)
		staff.PUT("/performances/:performanceID", performanceHandler.HandleUpdatePerformance)
		staff.DELETE("/performances/:performanceID", performanceHandler.HandleDeletePerformance)
	}

	// Reservations are scoped to the authenticated user.
	reservations := s.Router.Group(basePath, verifyJWT)
	{
		reservations.GET("/reservations", reservationHandler.HandleListReservations)
		reservations.POST("/reservations", reservationHandler.HandleCreateReservation)
		reservations.GET("/reservations/:reservationID", reservationHandler.HandleGetReservation)
		reservations.PUT("/reservations/:reservationID", reservationHandler.HandleUpdateReservation)
		reservations.DELETE("/reservations/:reservationID", reservationHandler.HandleDeleteReservation)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Theatre Booking API"
	docs.SwaggerInfo.Description = "A service for browsing plays and booking theatre tickets."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
