package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateSport(c *ginext.Context)
	GetSport(c *ginext.Context)
	ListSports(c *ginext.Context)
	UpdateSport(c *ginext.Context)
	DeleteSport(c *ginext.Context)
	AvailableSlots(c *ginext.Context)

	CreateConfig(c *ginext.Context)
	GetConfig(c *ginext.Context)
	ListConfigs(c *ginext.Context)
	UpdateConfig(c *ginext.Context)
	PreviewConfig(c *ginext.Context)

	ListBreakTimes(c *ginext.Context)
	CreateBreakTime(c *ginext.Context)
	UpdateBreakTime(c *ginext.Context)
	DeleteBreakTime(c *ginext.Context)

	ListBlackoutDates(c *ginext.Context)
	CreateBlackoutDate(c *ginext.Context)
	DeleteBlackoutDate(c *ginext.Context)

	ListSlots(c *ginext.Context)
	GetSlot(c *ginext.Context)
	CreateSlot(c *ginext.Context)
	UpdateSlot(c *ginext.Context)
	DeleteSlot(c *ginext.Context)
	BulkCreateSlots(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListBookingPlayers(c *ginext.Context)

	CreatePlayer(c *ginext.Context)
	GetPlayer(c *ginext.Context)
	ScanPlayer(c *ginext.Context)
	ListPlayerLogs(c *ginext.Context)

	DashboardStats(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Sports
		api.POST("/sports", h.CreateSport)
		api.GET("/sports", h.ListSports)
		api.GET("/sports/:id", h.GetSport)
		api.PATCH("/sports/:id", h.UpdateSport)
		api.DELETE("/sports/:id", h.DeleteSport)
		api.GET("/sports/:id/available_slots", h.AvailableSlots)

		// Booking configs
		api.POST("/booking-config", h.CreateConfig)
		api.GET("/booking-config", h.ListConfigs)
		api.GET("/booking-config/:id", h.GetConfig)
		api.PATCH("/booking-config/:id", h.UpdateConfig)
		api.GET("/booking-config/:id/preview", h.PreviewConfig)

		// Break times
		api.GET("/break-times", h.ListBreakTimes)
		api.POST("/break-times", h.CreateBreakTime)
		api.PATCH("/break-times/:id", h.UpdateBreakTime)
		api.DELETE("/break-times/:id", h.DeleteBreakTime)

		// Blackout dates
		api.GET("/blackout-dates", h.ListBlackoutDates)
		api.POST("/blackout-dates", h.CreateBlackoutDate)
		api.DELETE("/blackout-dates/:id", h.DeleteBlackoutDate)

		// Slots
		api.GET("/slots", h.ListSlots)
		api.POST("/slots", h.CreateSlot)
		api.POST("/slots/bulk_create", h.BulkCreateSlots)
		api.GET("/slots/:id", h.GetSlot)
		api.PATCH("/slots/:id", h.UpdateSlot)
		api.DELETE("/slots/:id", h.DeleteSlot)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/bookings/:id/players", h.ListBookingPlayers)

		// Players
		api.POST("/players", h.CreatePlayer)
		api.POST("/players/scan", h.ScanPlayer)
		api.GET("/players/:id", h.GetPlayer)
		api.GET("/players/:id/logs", h.ListPlayerLogs)

		// Dashboard
		api.GET("/dashboard/stats", h.DashboardStats)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
