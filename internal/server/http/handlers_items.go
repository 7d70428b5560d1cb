package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/battleapi/internal/common"
)

type createItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (s *Server) handleListItems(c *gin.Context) {
	items, err := s.items.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "item listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, toItemResponses(items))
}

func (s *Server) handleCreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := s.items.Create(c.Request.Context(), currentUser(c).ID, req.Title, req.Description)
	if err != nil {
		s.logger.Error(c.Request.Context(), "item creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, toItemResponse(item))
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	err := s.items.Delete(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		case errors.Is(err, common.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not the owner of this item"})
		default:
			s.logger.Error(c.Request.Context(), "item deletion failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
