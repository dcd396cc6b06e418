package model

import "time"

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Group is a user-created community around a hobby.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HobbyID     string    `json:"hobbyId,omitempty"`
	City        string    `json:"city"`
	OwnerID     string    `json:"ownerId"`
	IsPrivate   bool      `json:"isPrivate"`
	MaxMembers  int       `json:"maxMembers"`
	MemberCount int       `json:"memberCount"`
	PostCount   int       `json:"postCount"`
	ImagePath   string    `json:"-"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Full reports whether the group has reached its member cap.
// A MaxMembers of zero means unlimited.
func (g Group) Full() bool {
	return g.MaxMembers > 0 && g.MemberCount >= g.MaxMembers
}

// GroupMember is one row of a group's membership list.
type GroupMember struct {
	GroupID     string    `json:"groupId"`
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName,omitempty"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// GroupPost is a message posted to a group feed.
type GroupPost struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"groupId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// GroupFilter narrows group listings.
type GroupFilter struct {
	HobbyID string
	City    string
	Search  string
	Limit   int
	Offset  int
}

// GroupInput is the payload for creating or updating a group.
type GroupInput struct {
	Name        string `json:"name" validate:"required,min=3,max=80"`
	Description string `json:"description" validate:"max=1000"`
	HobbyID     string `json:"hobbyId" validate:"omitempty,uuid"`
	City        string `json:"city" validate:"max=80"`
	IsPrivate   bool   `json:"isPrivate"`
	MaxMembers  int    `json:"maxMembers" validate:"gte=0,lte=10000"`
}
