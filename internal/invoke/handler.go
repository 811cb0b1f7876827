// Package invoke serves the GUI shell's commands over local HTTP. Each
// command maps to exactly one use case call, and every failure comes back as
// a plain string message.
package invoke

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/peeky-app/peeky-service/internal/category"
	"github.com/peeky-app/peeky-service/internal/item"
	"github.com/peeky-app/peeky-service/internal/pkg/logger"
)

type Handler struct {
	categories category.UseCase
	items      item.UseCase
	logger     logger.ZapLogger
	commands   map[string]commandFunc
}

func NewHandler(categories category.UseCase, items item.UseCase, log logger.ZapLogger) *Handler {
	h := &Handler{
		categories: categories,
		items:      items,
		logger:     log,
	}
	h.registerCommands()
	return h
}

// Commands lists the registered command names in sorted order.
func (h *Handler) Commands() []string {
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Router builds the gin engine serving POST /invoke/:command.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())
	r.POST("/invoke/:command", h.Invoke)
	r.GET("/commands", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"commands": h.Commands()})
	})
	return r
}

func (h *Handler) Invoke(c *gin.Context) {
	name := c.Param("command")
	cmd, ok := h.commands[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown command " + name})
		return
	}

	var args Args
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(body) > 0 {
		if err := binding.JSON.BindBody(body, &args); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := cmd(c.Request.Context(), &args)
	if err != nil {
		h.logger.Error("command failed", zap.String("command", name), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.NotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.NotValid), errors.Is(err, errors.BadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Debug("command handled",
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
