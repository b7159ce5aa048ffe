package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/house-hunting/internal/audit"
	"github.com/BruksfildServices01/house-hunting/internal/config"
	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/handlers"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/jobs"
	"github.com/BruksfildServices01/house-hunting/internal/metrics"
	"github.com/BruksfildServices01/house-hunting/internal/middleware"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	ucAccount "github.com/BruksfildServices01/house-hunting/internal/usecase/account"
	ucHouse "github.com/BruksfildServices01/house-hunting/internal/usecase/house"
)

// Deps is everything the HTTP layer needs. DenyList and Photos may be nil.
type Deps struct {
	Config  *config.Config
	Log     *zap.Logger
	Metrics *metrics.Metrics

	Accounts account.Repository
	Houses   house.Repository
	Audit    audit.Store
	Queue    jobs.Submitter

	Tokens   account.TokenIssuer
	Hasher   account.PasswordHasher
	DenyList account.DenyList

	Photos     house.PhotoStore
	Transcoder ucHouse.Transcoder
}

type Handlers struct {
	Auth            *handlers.AuthHandler
	House           *handlers.HouseHandler
	LandlordProfile *handlers.LandlordProfileHandler
	Photo           *handlers.PhotoHandler
	Activity        *handlers.ActivityHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(d.Log),
		middleware.Recovery(),
		middleware.RequestLogger(),
		d.Metrics.Middleware(),
		middleware.CORS(d.Config.FrontendURL),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	recorder := audit.NewRecorder(d.Audit, d.Queue, d.Log)

	// ======================================================
	// USE CASES
	// ======================================================
	signup := ucAccount.NewSignup(d.Accounts, d.Hasher, d.Tokens)
	login := ucAccount.NewLogin(d.Accounts, d.Hasher, d.Tokens)
	refresh := ucAccount.NewRefresh(d.Accounts, d.Tokens)
	logout := ucAccount.NewLogout(d.DenyList)
	currentUser := ucAccount.NewGetCurrentUser(d.Accounts)

	createProfile := ucAccount.NewCreateLandlordProfile(d.Accounts, recorder)
	getProfile := ucAccount.NewGetLandlordProfile(d.Accounts)

	houseUC := handlers.HouseUseCases{
		List:         ucHouse.NewListHouses(d.Houses),
		Get:          ucHouse.NewGetHouse(d.Houses, d.Queue, d.Log),
		GetOwn:       ucHouse.NewGetOwnHouse(d.Houses),
		Create:       ucHouse.NewCreateHouse(d.Houses, recorder),
		Update:       ucHouse.NewUpdateHouse(d.Houses, recorder),
		Delete:       ucHouse.NewDeleteHouse(d.Houses, recorder),
		UpdateStatus: ucHouse.NewUpdateHouseStatus(d.Houses, recorder),
		ByLandlord:   ucHouse.NewListLandlordHouses(d.Houses),
	}

	uploadPhotos := ucHouse.NewUploadPhotos(
		d.Houses,
		d.Photos,
		d.Transcoder,
		ucHouse.PhotoLimits{MaxFiles: d.Config.Photos.MaxFiles, MaxBytes: d.Config.Photos.MaxBytes},
		recorder,
		d.Log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	h := Handlers{
		Auth:            handlers.NewAuthHandler(signup, login, refresh, logout, currentUser, d.Metrics),
		House:           handlers.NewHouseHandler(houseUC),
		LandlordProfile: handlers.NewLandlordProfileHandler(createProfile, getProfile),
		Photo:           handlers.NewPhotoHandler(uploadPhotos, d.Config.Photos.MaxBytes),
		Activity:        handlers.NewActivityHandler(audit.NewListActivity(d.Audit)),
	}

	r.GET("/health", health)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	Mount(r, h, middleware.Authenticate(d.Tokens, d.DenyList))

	r.NoRoute(httperr.NotFoundRoute)
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Mount registers the JSON API under /api.
func Mount(r gin.IRouter, h Handlers, authMW gin.HandlerFunc) {
	api := r.Group("/api")

	// ------------------------------
	// AUTH
	// ------------------------------
	auth := api.Group("/auth")
	{
		auth.POST("/signup/tenant", h.Auth.SignupTenant)
		auth.POST("/signup/landlord", h.Auth.SignupLandlord)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", authMW, h.Auth.Logout)
		auth.GET("/me", authMW, h.Auth.Me)
	}

	// ------------------------------
	// PUBLIC LISTINGS
	// ------------------------------
	api.GET("/houses", h.House.List)
	api.GET("/houses/:id", h.House.Get)
	api.GET("/landlords/:landlordId/houses", h.House.ListByLandlord)

	// ------------------------------
	// AUTHENTICATED
	// ------------------------------
	secured := api.Group("/")
	secured.Use(authMW)
	{
		// ownership and role are checked by the use cases
		secured.POST("/houses", h.House.Create)
		secured.PUT("/houses/:id", h.House.Update)
		secured.DELETE("/houses/:id", h.House.Delete)
		secured.PATCH("/houses/:id/status", h.House.UpdateStatus)
		secured.POST("/houses/:id/photos", h.Photo.Upload)

		secured.GET("/my-activity", h.Activity.List)
	}

	landlord := api.Group("/")
	landlord.Use(authMW, middleware.RequireRole(models.RoleLandlord))
	{
		landlord.GET("/my-houses", h.House.ListMine)
		landlord.GET("/my-houses/:id", h.House.GetMine)

		landlord.POST("/landlord-profile", h.LandlordProfile.Create)
		landlord.GET("/landlord-profile", h.LandlordProfile.Get)
	}
}
