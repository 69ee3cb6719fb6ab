package response_models

// TripPlan is the structured itinerary artifact produced by the language
// model. Field names and nesting mirror the schema pinned in the prompt
// template; every leaf except the day number is a free-form string because
// the model phrases prices, ratings and times however it likes.
type TripPlan struct {
	TripDetails  TripDetails `json:"tripDetails"`
	HotelOptions []Hotel     `json:"hotelOptions"`
	Itinerary    []DayPlan   `json:"itinerary"`
	BudgetTips   []string    `json:"budgetTips"`
}

type TripDetails struct {
	Location  string `json:"location"`
	Duration  string `json:"duration"`
	Travelers string `json:"travelers"`
	Budget    string `json:"budget"`
}

type Hotel struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Price       string `json:"price"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
}

type DayPlan struct {
	Day      int        `json:"day"`
	Schedule []Activity `json:"schedule"`
}

type Activity struct {
	Time          string `json:"time"`
	PlaceName     string `json:"placeName"`
	Details       string `json:"details"`
	TicketPricing string `json:"ticketPricing"`
	TravelTime    string `json:"travelTime"`
}
