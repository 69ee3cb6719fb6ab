package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"tripwise/internal/models/response_models"
)

// CleanModelResponse strips markdown code fences (with or without a language
// tag) and surrounding whitespace from a raw completion. Text without fences
// passes through unchanged.
func CleanModelResponse(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```JSON", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// ParseTripPlan turns raw model text into a TripPlan or fails with
// ErrMalformedModelOutput. Parse success or failure is all-or-nothing;
// nested fields are not validated beyond syntactic parseability.
func ParseTripPlan(raw string) (*response_models.TripPlan, error) {
	cleaned := CleanModelResponse(raw)

	var plan response_models.TripPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}

	// nil slices would serialize back as JSON null; consumers expect arrays.
	if plan.HotelOptions == nil {
		plan.HotelOptions = []response_models.Hotel{}
	}
	if plan.Itinerary == nil {
		plan.Itinerary = []response_models.DayPlan{}
	}
	if plan.BudgetTips == nil {
		plan.BudgetTips = []string{}
	}
	for i := range plan.Itinerary {
		if plan.Itinerary[i].Schedule == nil {
			plan.Itinerary[i].Schedule = []response_models.Activity{}
		}
	}

	return &plan, nil
}
