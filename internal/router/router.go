package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)
	LoginAssistant(c *ginext.Context)
	InitialData(c *ginext.Context)
	Sync(c *ginext.Context)
	Validate(c *ginext.Context)
	ListScans(c *ginext.Context)
	ScanReport(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListEventTickets(c *ginext.Context)
	CreateTicket(c *ginext.Context)
	BlockTicket(c *ginext.Context)
	UnblockTicket(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, ws ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/login", h.Login)
		api.POST("/login/assistant", h.LoginAssistant)

		// Device bootstrap and polling
		api.GET("/data", h.InitialData)
		api.GET("/sync", h.Sync)

		// Validation
		api.POST("/validate", h.Validate)
		api.GET("/scans", h.ListScans)
		api.GET("/scans/report", h.ScanReport)

		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/tickets", h.ListEventTickets)

		// Tickets
		api.POST("/tickets", h.CreateTicket)
		api.POST("/tickets/:id/block", h.BlockTicket)
		api.POST("/tickets/:id/unblock", h.UnblockTicket)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
	}

	router.GET("/ws", ws)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
