package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroup_Full(t *testing.T) {
	assert.False(t, Group{MaxMembers: 0, MemberCount: 500}.Full())
	assert.False(t, Group{MaxMembers: 3, MemberCount: 2}.Full())
	assert.True(t, Group{MaxMembers: 3, MemberCount: 3}.Full())
}

func TestTimeSlot_Overlaps(t *testing.T) {
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	slot := TimeSlot{Start: base, End: base.Add(time.Hour)}

	tests := []struct {
		name  string
		other TimeSlot
		want  bool
	}{
		{"identical", slot, true},
		{"inside", TimeSlot{base.Add(15 * time.Minute), base.Add(30 * time.Minute)}, true},
		{"straddles start", TimeSlot{base.Add(-30 * time.Minute), base.Add(30 * time.Minute)}, true},
		{"touches end", TimeSlot{base.Add(time.Hour), base.Add(2 * time.Hour)}, false},
		{"touches start", TimeSlot{base.Add(-time.Hour), base}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(slot))
		})
	}
}

func TestCenter_Offers(t *testing.T) {
	c := Center{Sports: []string{"Tennis", "padel"}}
	assert.True(t, c.Offers("tennis"))
	assert.True(t, c.Offers("PADEL"))
	assert.False(t, c.Offers("squash"))
}

func TestUserUpdate_Apply(t *testing.T) {
	name := "Rafa"
	city := "Madrid"
	u := User{DisplayName: "old", City: "Paris", Bio: "keep"}

	UserUpdate{DisplayName: &name, City: &city}.Apply(&u)

	assert.Equal(t, "Rafa", u.DisplayName)
	assert.Equal(t, "Madrid", u.City)
	assert.Equal(t, "keep", u.Bio)
	assert.False(t, u.UpdatedAt.IsZero())
}

func TestUser_PublicProfile(t *testing.T) {
	u := User{ID: "u1", Email: "a@b.c", Phone: "123", DisplayName: "A"}
	p := u.PublicProfile()
	assert.Empty(t, p.Email)
	assert.Empty(t, p.Phone)
	assert.Equal(t, "A", p.DisplayName)
	assert.Equal(t, "a@b.c", u.Email)
}
