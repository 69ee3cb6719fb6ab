package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/pkg/utils"
)

const samplePlanJSON = `{
  "tripDetails": {
    "location": "Paris",
    "duration": "3 days",
    "travelers": "Couple",
    "budget": "Moderate"
  },
  "hotelOptions": [
    {
      "name": "Hotel Le Marais",
      "address": "12 Rue de Rivoli, 75004 Paris",
      "price": "$150-$200 per night",
      "rating": "4.5 stars",
      "description": "Boutique hotel near the Seine"
    }
  ],
  "itinerary": [
    {
      "day": 1,
      "schedule": [
        {
          "time": "9:00 AM - 12:00 PM",
          "placeName": "Louvre Museum, Paris",
          "details": "World's largest art museum",
          "ticketPricing": "$20 per person",
          "travelTime": "15 minutes from hotel"
        }
      ]
    }
  ],
  "budgetTips": ["Buy a museum pass", "Use the metro"]
}`

func TestCleanModelResponse_StripsFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"json tag", "```json\n" + samplePlanJSON + "\n```"},
		{"upper tag", "```JSON\n" + samplePlanJSON + "\n```"},
		{"no tag", "```\n" + samplePlanJSON + "\n```"},
		{"no fences", samplePlanJSON},
		{"surrounding whitespace", "\n\n  " + samplePlanJSON + "  \n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, samplePlanJSON, utils.CleanModelResponse(tc.in))
		})
	}
}

func TestParseTripPlan_ValidDocument(t *testing.T) {
	plan, err := utils.ParseTripPlan("```json\n" + samplePlanJSON + "\n```")
	require.NoError(t, err)

	assert.Equal(t, "Paris", plan.TripDetails.Location)
	assert.Equal(t, "3 days", plan.TripDetails.Duration)
	require.Len(t, plan.HotelOptions, 1)
	assert.Equal(t, "Hotel Le Marais", plan.HotelOptions[0].Name)
	require.Len(t, plan.Itinerary, 1)
	assert.Equal(t, 1, plan.Itinerary[0].Day)
	require.Len(t, plan.Itinerary[0].Schedule, 1)
	assert.Equal(t, "Louvre Museum, Paris", plan.Itinerary[0].Schedule[0].PlaceName)
	assert.Equal(t, []string{"Buy a museum pass", "Use the metro"}, plan.BudgetTips)
}

func TestParseTripPlan_MalformedOutput(t *testing.T) {
	for _, raw := range []string{
		"I'm sorry, I can't produce an itinerary.",
		`{"tripDetails": {"location": "Paris"`,
		"```json\nnot json at all\n```",
	} {
		plan, err := utils.ParseTripPlan(raw)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, utils.ErrMalformedModelOutput)
	}
}

func TestParseTripPlan_SchemaIncompleteDocumentAccepted(t *testing.T) {
	// Parse-or-fail is top-level only: a syntactically valid but
	// schema-incomplete document passes through.
	plan, err := utils.ParseTripPlan(`{"tripDetails": {"location": "Paris"}}`)
	require.NoError(t, err)

	assert.Equal(t, "Paris", plan.TripDetails.Location)
	assert.NotNil(t, plan.HotelOptions)
	assert.NotNil(t, plan.Itinerary)
	assert.NotNil(t, plan.BudgetTips)
	assert.Empty(t, plan.HotelOptions)
}

func TestParseTripPlan_MissingDaySchedulesBecomeEmptyArrays(t *testing.T) {
	plan, err := utils.ParseTripPlan(`{"itinerary": [{"day": 1}, {"day": 2}]}`)
	require.NoError(t, err)

	require.Len(t, plan.Itinerary, 2)
	for _, day := range plan.Itinerary {
		assert.NotNil(t, day.Schedule)
		assert.Empty(t, day.Schedule)
	}
}
