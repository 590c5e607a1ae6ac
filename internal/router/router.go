package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	RescheduleEvent(c *ginext.Context)
	Register(c *ginext.Context)
	ListApplications(c *ginext.Context)
	UpdateApplicationStatus(c *ginext.Context)
	AdminLogin(c *ginext.Context)
}

func InitRouter(mode string, h Handler, adminGuard ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public
		api.GET("/events", h.ListEvents)
		api.POST("/events/:id/register", h.Register)
		api.POST("/admin/login", h.AdminLogin)

		// Content management
		cms := api.Group("", adminGuard)
		{
			cms.POST("/events", h.CreateEvent)
			cms.DELETE("/events/:id", h.DeleteEvent)
			cms.PATCH("/events/:id", h.RescheduleEvent)
			cms.GET("/applications", h.ListApplications)
			cms.PATCH("/applications/:id", h.UpdateApplicationStatus)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
