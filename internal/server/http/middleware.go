package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/battleapi/internal/common"
	"github.com/dmitrijs2005/battleapi/internal/server/models"
)

const userContextKey = "currentUser"

// currentUser returns the user stored by authRequired. It must only be
// called from handlers behind that middleware.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(userContextKey).(*models.User)
}

// authRequired validates the Authorization bearer token and stores the
// resolved user in the request context. Both credential and token problems
// answer 401 with a WWW-Authenticate challenge; a deactivated user gets 403.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		user, err := s.identity.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, common.ErrForbidden):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "inactive user"})
			case errors.Is(err, common.ErrUnauthenticated):
				c.Header("WWW-Authenticate", "Bearer")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			default:
				s.logger.Error(c.Request.Context(), "identity resolution failed", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// cors answers preflight requests and stamps the CORS headers for
// configured origins.
func (s *Server) cors() gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(s.corsOrigins))
	for _, o := range s.corsOrigins {
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; ok {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestLogger logs one line per request with status and latency.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
