package request

import "tourease/internal/usecase/commands"

type SignUpRequest struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required"`
}

func (r SignUpRequest) ToInput() commands.SignUpInput {
	return commands.SignUpInput{
		Username:    r.Username,
		DisplayName: r.DisplayName,
		Password:    r.Password,
		Role:        r.Role,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}
