// Package server is the HTTP boundary of the portal. Every action answers
// with a Page: the view to render, the data it needs and a status line.
// Business failures never change the HTTP status, only the status line.
package server

import (
	"log/slog"
	"net/http"
	"warehouse-portal/domain"
	apperr "warehouse-portal/errors"
	"warehouse-portal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ViewLogin        = "login"
	ViewConversation = "conversation"
	ViewMessageInfo  = "group-message-info"
	ViewGroups       = "admin-groups"
	ViewColleagues   = "admin-colleagues"
	ViewLicences     = "admin-licences"
	ViewDevices      = "admin-devices"
)

// Page is the envelope of every response.
type Page struct {
	View         string `json:"view"`
	Status       string `json:"status,omitempty"`
	StatusColour string `json:"status_colour,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// Services groups the collaborators the handlers call.
type Services struct {
	Auth       services.IAuthService
	Messages   services.IMessageService
	Receipts   services.IReceiptService
	Views      services.IViewService
	Groups     services.IGroupService
	Colleagues services.IColleagueService
	Licences   services.ILicenceService
	Devices    services.IDeviceService
}

type Server struct {
	log      *slog.Logger
	services Services
	limiter  *RateLimiter
}

func NewServer(log *slog.Logger, services Services, limiter *RateLimiter) *Server {
	return &Server{log: log, services: services, limiter: limiter}
}

// Router builds the gin engine with every route of the portal.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), GinMetricsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/login", s.Login)

	portal := router.Group("/", s.Authenticated())
	portal.GET("/view", s.ConversationView)
	portal.POST("/view/messages", s.limiter.Middleware(), s.SendMessage)
	portal.GET("/view/group-message-info/:correlationID", s.GroupMessageInfo)

	admin := portal.Group("/admin", AdminOnly())
	admin.GET("/groups", s.ListGroups)
	admin.POST("/groups", s.AddGroup)
	admin.PUT("/groups/:name", s.RenameGroup)
	admin.PUT("/groups/:name/message", s.EditGroupMessage)
	admin.DELETE("/groups/:name", s.DeleteGroup)

	admin.GET("/colleagues", s.ListColleagues)
	admin.POST("/colleagues", s.AddColleague)
	admin.PUT("/colleagues/:address", s.EditColleague)
	admin.DELETE("/colleagues/:address", s.DeleteColleague)

	admin.GET("/licences", s.ListLicences)
	admin.POST("/licences", s.AddLicence)
	admin.DELETE("/licences/:key", s.DeleteLicence)

	admin.GET("/devices", s.ListDevices)
	admin.POST("/devices", s.AddDevice)
	admin.PUT("/devices/:id", s.AssignDevice)
	admin.DELETE("/devices/:id", s.DeleteDevice)
	return router
}

// render answers with the page, turning err into the status line.
func (s *Server) render(c *gin.Context, view string, err error, success string, data any) {
	message, colour := apperr.Status(err, success)
	if err != nil {
		s.log.Warn("Action failed",
			"view", view,
			"path", c.FullPath(),
			"method", c.Request.Method,
			"error", err)
	}
	c.JSON(http.StatusOK, Page{View: view, Status: message, StatusColour: colour, Data: data})
}

// bindJSON decodes the request body. A malformed body counts as a missing
// field.
func bindJSON(c *gin.Context, target any) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return apperr.ErrValidation
	}
	return nil
}

func principalFrom(c *gin.Context) domain.Principal {
	return c.MustGet(principalKey).(domain.Principal)
}
