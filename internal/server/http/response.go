package http

import (
	"github.com/dmitrijs2005/battleapi/internal/server/models"
)

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"username"`
	IsActive bool   `json:"is_active"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Email:    u.Email,
		UserName: u.UserName,
		IsActive: u.IsActive,
	}
}

type itemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
}

func toItemResponse(i *models.Item) itemResponse {
	return itemResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		OwnerID:     i.OwnerID,
	}
}

func toItemResponses(items []*models.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toItemResponse(i))
	}
	return out
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
