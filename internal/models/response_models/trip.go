package response_models

import "encoding/json"

// TripRecordResponse is a persisted trip returned on the read path. TripData
// and UserSelection are the stored documents passed through verbatim.
type TripRecordResponse struct {
	ID            string          `json:"id"`
	TripData      json.RawMessage `json:"tripData"`
	UserSelection json.RawMessage `json:"userSelection"`
	UserEmail     string          `json:"userEmail"`
	CreatedAt     int64           `json:"createdAt"`
}

// TripSummaryResponse is the list-view shape: enough to render a trip card
// without shipping the full plan document.
type TripSummaryResponse struct {
	ID            string          `json:"id"`
	Location      string          `json:"location"`
	BudgetTips    []string        `json:"budgetTips"`
	UserSelection json.RawMessage `json:"userSelection"`
	CreatedAt     int64           `json:"createdAt"`
}
