package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tripwise/pkg/utils"
)

func TestBuildTripPrompt_SubstitutesEveryPlaceholder(t *testing.T) {
	prompt := utils.BuildTripPrompt("Paris", "3", "Couple", "Moderate")

	for _, token := range []string{"{location}", "{totalDays}", "{traveler}", "{budget}"} {
		assert.NotContains(t, prompt, token)
	}

	// The location slot appears in the header, the instructions, the
	// tripDetails echo and the budget tips.
	assert.GreaterOrEqual(t, strings.Count(prompt, "Paris"), 3)
	assert.Contains(t, prompt, "Location: Paris")
	assert.Contains(t, prompt, `"duration": "3 days"`)
	assert.Contains(t, prompt, "Travelers: Couple")
	assert.Contains(t, prompt, "Budget: Moderate")
}

func TestBuildTripPrompt_PinsOutputSchema(t *testing.T) {
	prompt := utils.BuildTripPrompt("Kyoto", "5", "Family", "Luxury")

	for _, field := range []string{"tripDetails", "hotelOptions", "itinerary", "budgetTips", "placeName", "ticketPricing", "travelTime"} {
		assert.Contains(t, prompt, field)
	}
	assert.Contains(t, prompt, "valid JSON only")
}

func TestBuildTripPrompt_Deterministic(t *testing.T) {
	a := utils.BuildTripPrompt("Hanoi", "2", "Solo", "Cheap")
	b := utils.BuildTripPrompt("Hanoi", "2", "Solo", "Cheap")
	assert.Equal(t, a, b)
}
