package response

import (
	"ride-together/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	LastLogin   *int64 `json:"lastLogin,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	res := &UserResponse{
		ID:          v.ID.String(),
		Email:       v.Email,
		DisplayName: v.DisplayName,
		CreatedAt:   v.CreatedAt.Unix(),
	}
	if v.LastLogin != nil {
		ts := v.LastLogin.Unix()
		res.LastLogin = &ts
	}
	return res
}
