package server

import (
	"context"
	"net/http"

	"gymbooking/internal/booking"
	"gymbooking/internal/catalog"
	"gymbooking/internal/config"
	"gymbooking/internal/contact"
	"gymbooking/internal/email"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(10, 20))

	catalogRepo := catalog.NewRepository(db)
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo))

	bookingRepo := booking.NewRepository(db)
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, catalogRepo, emailService))

	contactHandler := contact.NewHandler(contact.NewService(contact.NewRepository(db), emailService))

	router.GET("/classes", catalogHandler.ListClasses)
	router.POST("/classes", catalogHandler.CreateClass)
	router.GET("/classes/:classID", catalogHandler.GetClass)
	router.POST("/classes/:classID/slots", catalogHandler.CreateTimeSlot)
	router.GET("/timeslots", catalogHandler.ListTimeSlots)

	router.POST("/bookings", bookingHandler.CreateBooking)
	router.GET("/bookings/my_bookings", bookingHandler.MyBookings)
	router.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)

	router.POST("/contact", contactHandler.SubmitMessage)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		http:   &http.Server{Handler: router},
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http.Addr = ":" + port
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
