package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/battleapi/internal/common"
)

const githubAuthorizeURL = "https://github.com/login/oauth/authorize"

// handleGithubLogin starts the GitHub OAuth flow. Token exchange and
// account linking are not implemented yet, so the endpoint only hands out
// the authorize URL instead of redirecting.
func (s *Server) handleGithubLogin(c *gin.Context) {
	if s.githubClientID == "" {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "GitHub OAuth is not configured"})
		return
	}

	state, err := common.MakeRandHexString(16)
	if err != nil {
		s.logger.Error(c.Request.Context(), "state generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	query := url.Values{}
	query.Set("client_id", s.githubClientID)
	query.Set("scope", "read:user user:email")
	query.Set("state", state)

	c.JSON(http.StatusOK, gin.H{
		"status":        "not_implemented",
		"authorize_url": fmt.Sprintf("%s?%s", githubAuthorizeURL, query.Encode()),
	})
}

func (s *Server) handleGithubCallback(c *gin.Context) {
	if s.githubClientID == "" || s.githubClientSecret == "" {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "GitHub OAuth is not configured"})
		return
	}

	if c.Query("code") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "not_implemented"})
}
