package dto

import "taskflow_backend/internal/feature/auth/domain/entity"

// UserResponse はユーザー情報のレスポンスDTOです。
// パスワードハッシュは決して含まれません。
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse は登録・ログイン成功時のレスポンスDTOです。
type AuthResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// NewUserResponse converts a user entity into its public representation.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NewAuthResponse converts a user entity and token into an auth response.
func NewAuthResponse(u *entity.User, token string) AuthResponse {
	return AuthResponse{ID: u.ID, Name: u.Name, Email: u.Email, Token: token}
}
