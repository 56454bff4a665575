package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoItinerary is returned when a reply does not carry both markers.
	ErrNoItinerary = errors.New("no inline itinerary")
	// ErrInvalidItinerary is returned when an itinerary breaks a structural rule.
	ErrInvalidItinerary = errors.New("invalid itinerary")
)

// Itinerary is a structured multi-day travel plan.
type Itinerary struct {
	Destination  string        `json:"destination"`
	Duration     int           `json:"duration"`
	StartDate    string        `json:"startDate,omitempty"`
	EndDate      string        `json:"endDate,omitempty"`
	TravelerInfo *TravelerInfo `json:"travelerInfo,omitempty"`
	Days         []Day         `json:"days"`
}

// TravelerInfo holds the optional traveler profile.
type TravelerInfo struct {
	Budget              string   `json:"budget,omitempty"`
	Preferences         []string `json:"preferences,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
}

// Day is one day of an itinerary. Day is 1-based and matches its position.
type Day struct {
	Day        int        `json:"day"`
	Date       string     `json:"date,omitempty"`
	Activities []Activity `json:"activities"`
}

// Activity is a single planned item. Only Activity is required.
type Activity struct {
	Time     string `json:"time,omitempty"`
	Activity string `json:"activity"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Budget returns the traveler budget, or "" when absent.
func (it *Itinerary) Budget() string {
	if it.TravelerInfo == nil {
		return ""
	}
	return it.TravelerInfo.Budget
}

// Preferences returns the traveler preferences, or nil when absent.
func (it *Itinerary) Preferences() []string {
	if it.TravelerInfo == nil {
		return nil
	}
	return it.TravelerInfo.Preferences
}

// HasDateRange reports whether both ends of the date range are known.
func (it *Itinerary) HasDateRange() bool {
	return it.StartDate != "" && it.EndDate != ""
}

// Validate checks the structural rules of an itinerary.
func (it *Itinerary) Validate() error {
	if strings.TrimSpace(it.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidItinerary)
	}
	if it.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidItinerary, it.Duration)
	}
	for i, d := range it.Days {
		if d.Day != i+1 {
			return fmt.Errorf("%w: day %d at position %d", ErrInvalidItinerary, d.Day, i+1)
		}
		for j, a := range d.Activities {
			if strings.TrimSpace(a.Activity) == "" {
				return fmt.Errorf("%w: day %d activity %d has no name", ErrInvalidItinerary, d.Day, j+1)
			}
		}
	}
	return nil
}

// ExtractItinerary parses the JSON payload between MarkerStart and MarkerEnd.
// Both markers must be present; otherwise ErrNoItinerary is returned.
func ExtractItinerary(text string) (*Itinerary, error) {
	start := strings.Index(text, MarkerStart)
	if start < 0 {
		return nil, ErrNoItinerary
	}
	rest := text[start+len(MarkerStart):]
	end := strings.Index(rest, MarkerEnd)
	if end < 0 {
		return nil, ErrNoItinerary
	}

	var it Itinerary
	if err := json.Unmarshal([]byte(strings.TrimSpace(rest[:end])), &it); err != nil {
		return nil, fmt.Errorf("failed to decode itinerary: %w", err)
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	return &it, nil
}
