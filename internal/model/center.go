package model

import (
	"slices"
	"strings"
	"time"
)

// Center is a bookable sports venue.
type Center struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" validate:"required,max=120"`
	Address    string    `json:"address" validate:"max=255"`
	City       string    `json:"city" validate:"max=80"`
	Sports     []string  `json:"sports" validate:"required,min=1,dive,required"`
	Latitude   float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude  float64   `json:"longitude" validate:"gte=-180,lte=180"`
	Courts     int       `json:"courts" validate:"gte=1"`
	OpenTime   string    `json:"openTime" validate:"required,datetime=15:04"`
	CloseTime  string    `json:"closeTime" validate:"required,datetime=15:04"`
	Phone      string    `json:"phone" validate:"max=30"`
	CreatedAt  time.Time `json:"createdAt"`
	DistanceKm float64   `json:"distanceKm,omitempty"`
}

// Offers reports whether the center lists sport (case-insensitive).
func (c Center) Offers(sport string) bool {
	return slices.ContainsFunc(c.Sports, func(s string) bool {
		return strings.EqualFold(s, sport)
	})
}

// CenterFilter narrows center listings.
type CenterFilter struct {
	City   string
	Sport  string
	Limit  int
	Offset int
}

// NearbyQuery is a radius search around a coordinate.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Sport     string
}

// Availability lists what is already booked at a center on a given day.
type Availability struct {
	CenterID  string     `json:"centerId"`
	Date      string     `json:"date"`
	Courts    int        `json:"courts"`
	OpenTime  string     `json:"openTime"`
	CloseTime string     `json:"closeTime"`
	Booked    []TimeSlot `json:"booked"`
}

// TimeSlot is a half-open [Start, End) interval.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether two half-open intervals intersect.
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}
