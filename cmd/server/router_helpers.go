package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/interfaces/http/response"
)

const (
	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, Idempotency-Key, X-Request-ID"
)

// applyCORSMiddleware allows the configured origin. "*" (or an empty setting)
// reflects whatever origin the browser sent.
func applyCORSMiddleware(r *gin.Engine, allowedOrigin string) {
	allowedOrigin = strings.TrimSpace(allowedOrigin)
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case allowedOrigin == "" || allowedOrigin == "*":
			if origin != "" {
				c.Header("Access-Control-Allow-Origin", origin)
			} else {
				c.Header("Access-Control-Allow-Origin", "*")
			}
		case origin == "" || origin == allowedOrigin:
			c.Header("Access-Control-Allow-Origin", allowedOrigin)
		}
		c.Header("Vary", "Origin")
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Expose-Headers", "X-Request-ID, X-Idempotency-Hit")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerMetricsRoute(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func registerNotFound(r *gin.Engine) {
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, domainerrors.NotFound("route not found"))
	})
}
