package handler

import (
	"net/http"

	"coworking-booking/internal/handler/api"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Space      *api.SpaceHandler
	AccessCode *api.AccessCodeHandler
	Booking    *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if cfg.QR.ServeFiles {
		engine.Static("/qr", cfg.QR.StorageDir)
	}

	v1 := engine.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		addRoutes(v1.Group("/space"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Space.GetSpace},
			{Method: http.MethodGet, Path: "/hours", Handler: h.Space.GetHours},
			{Method: http.MethodGet, Path: "/photos", Handler: h.Space.GetPhotos},
			{Method: http.MethodGet, Path: "/meeting-rooms", Handler: h.Space.GetMeetingRooms},
			{Method: http.MethodGet, Path: "/amenities", Handler: h.Space.GetAmenities},
			{Method: http.MethodGet, Path: "/products", Handler: h.Space.GetProducts},
			{Method: http.MethodGet, Path: "/legal", Handler: h.Space.GetLegal},
			{Method: http.MethodGet, Path: "/meeting-room-availability", Handler: h.Space.GetMeetingRoomAvailability},
		})

		addRoutes(v1.Group("/access-codes"), []route{
			{Method: http.MethodPost, Path: "/standalone", Handler: h.AccessCode.CreateStandalone},
			{Method: http.MethodPost, Path: "/product", Handler: h.AccessCode.CreateForProduct},
		})

		addRoutes(v1, []route{
			{Method: http.MethodPost, Path: "/meeting-room-booking", Handler: h.Booking.Create},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
