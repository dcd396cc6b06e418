package model

import "time"

// User is a profile document keyed by the identity provider UID.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Bio         string    `json:"bio"`
	Phone       string    `json:"phone"`
	City        string    `json:"city"`
	AvatarPath  string    `json:"-"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PublicProfile strips contact details that only the owner may see.
func (u User) PublicProfile() User {
	u.Email = ""
	u.Phone = ""
	return u
}

// UserUpdate is a partial profile update; nil fields are left unchanged.
type UserUpdate struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=2,max=60"`
	FirstName   *string `json:"firstName" validate:"omitempty,max=60"`
	LastName    *string `json:"lastName" validate:"omitempty,max=60"`
	Bio         *string `json:"bio" validate:"omitempty,max=500"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	City        *string `json:"city" validate:"omitempty,max=80"`
}

// Apply copies the set fields onto u and bumps UpdatedAt.
func (p UserUpdate) Apply(u *User) {
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.City != nil {
		u.City = *p.City
	}
	u.UpdatedAt = nowUTC()
}

// Registration is the sign-up payload.
type Registration struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=128"`
	DisplayName string `json:"displayName" validate:"required,min=2,max=60"`
	FirstName   string `json:"firstName" validate:"max=60"`
	LastName    string `json:"lastName" validate:"max=60"`
	City        string `json:"city" validate:"max=80"`
}

// Credentials is the password sign-in payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
