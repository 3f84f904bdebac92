package response

import (
	"tourease/internal/usecase/commands"

	"github.com/google/uuid"
)

type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	AccountID   uuid.UUID `json:"account_id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

func FromAuthResult(r *commands.AuthResult) AuthResponse {
	return AuthResponse{
		AccessToken: r.Token,
		AccountID:   r.AccountID,
		DisplayName: r.DisplayName,
		Role:        r.Role,
	}
}
