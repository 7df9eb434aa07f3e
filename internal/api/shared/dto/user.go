package dto

import (
	"time"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/store/schema"
)

// UserResponse represents a marketplace user profile
type UserResponse struct {
	ID             int64             `json:"id"`
	Address        string            `json:"address"`
	Chain          domain.Blockchain `json:"chain"`
	Username       *string           `json:"username,omitempty"`
	Bio            *string           `json:"bio,omitempty"`
	AvatarURL      *string           `json:"avatar_url,omitempty"`
	IsAdmin        bool              `json:"is_admin"`
	IsBanned       bool              `json:"is_banned"`
	FollowersCount int64             `json:"followers_count"`
	FollowingCount int64             `json:"following_count"`
	CreatedAt      time.Time         `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users  []UserResponse `json:"items"`
	Offset *uint64        `json:"offset,omitempty"`
	Total  uint64         `json:"total"`
}

// MapUserToDTO maps a schema.User to UserResponse
func MapUserToDTO(user *schema.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:             user.ID,
		Address:        user.Address,
		Chain:          user.Chain,
		Username:       user.Username,
		Bio:            user.Bio,
		AvatarURL:      user.AvatarURL,
		IsAdmin:        user.IsAdmin,
		IsBanned:       user.IsBanned,
		FollowersCount: user.FollowersCount,
		FollowingCount: user.FollowingCount,
		CreatedAt:      user.CreatedAt,
	}
}

// MapUsersToDTO maps a slice of users to a paginated list response
func MapUsersToDTO(users []*schema.User, offset *uint64, total uint64) *UserListResponse {
	items := make([]UserResponse, 0, len(users))
	for _, user := range users {
		if mapped := MapUserToDTO(user); mapped != nil {
			items = append(items, *mapped)
		}
	}
	return &UserListResponse{
		Users:  items,
		Offset: offset,
		Total:  total,
	}
}
