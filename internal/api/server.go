package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"projctl/internal/devtool"
	"projctl/internal/launch"
	"projctl/internal/preset"
	"projctl/internal/settings"
	"projctl/internal/system"
	appver "projctl/internal/version"
)

// Server exposes the settings and tool actions over a local HTTP API, the
// boundary a frontend talks to.
type Server struct {
	Addr string

	dispatcher *devtool.Dispatcher
}

func New(addr string) *Server {
	return &Server{
		Addr:       addr,
		dispatcher: devtool.NewDispatcher(launch.Process{}),
	}
}

// Handler builds the router; split out for tests.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	s.mountAPI(r)
	return r
}

// Start serves until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("api server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

func (s *Server) mountAPI(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	r.GET("/api/settings", s.getSettings)
	r.PUT("/api/settings", s.putSettings)
	r.GET("/api/presets", s.getPresets)
	r.GET("/api/tools", s.getTools)
	r.POST("/api/open", s.postOpen)
}

func (s *Server) getSettings(c *gin.Context) {
	st, err := settings.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) putSettings(c *gin.Context) {
	var st settings.AppSettings
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st.Normalize()
	if err := settings.Save(st); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) getPresets(c *gin.Context) {
	c.JSON(http.StatusOK, preset.Detect())
}

// getTools returns the merged working view: persisted tools reconciled with
// the current preset catalog.
func (s *Server) getTools(c *gin.Context) {
	st, err := settings.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	merged := devtool.Merge(st.DevTools, preset.Detect())
	c.JSON(http.StatusOK, gin.H{
		"tools":            merged,
		"defaultDevToolId": st.DefaultDevToolID,
	})
}

type openRequest struct {
	Path   string `json:"path" binding:"required"`
	ToolID string `json:"toolId"`
}

// postOpen opens a project path with the given tool, or the default when no
// tool id is supplied.
func (s *Server) postOpen(c *gin.Context) {
	var req openRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, err := settings.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	merged := devtool.Merge(st.DevTools, preset.Detect())

	if req.ToolID != "" {
		err = s.dispatcher.InvokeByID(c.Request.Context(), merged, req.ToolID, req.Path)
	} else {
		err = s.dispatcher.InvokeDefault(c.Request.Context(), merged, st.DefaultDevToolID, req.Path)
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "launched"})
}
