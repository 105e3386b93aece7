package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetSlots(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBusinessBookings(c *ginext.Context)
	RescheduleBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetBookingByReference(c *ginext.Context)
	GetCustomerBookings(c *ginext.Context)
	ResolveSupport(c *ginext.Context)
	TelegramWebhook(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Businesses
		api.GET("/businesses/:id/slots", h.GetSlots)
		api.GET("/businesses/:id/bookings", h.ListBusinessBookings)
		api.POST("/businesses/:id/bookings", h.CreateBooking)

		// Bookings
		api.GET("/bookings", h.GetBookingByReference)
		api.POST("/bookings/:id/reschedule", h.RescheduleBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Customers
		api.GET("/customers/:id/bookings", h.GetCustomerBookings)

		// Support
		api.POST("/support/resolve", h.ResolveSupport)
	}

	router.POST("/webhooks/telegram/:business_id", h.TelegramWebhook)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
