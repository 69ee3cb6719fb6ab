package request_models

import "encoding/json"

// StringOrNumber accepts a JSON string or number and keeps its textual form.
// Clients send noOfDays both ways.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StringOrNumber(str)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = StringOrNumber(n.String())
	return nil
}

// GenerateTripRequest is the user's trip selection. All four fields are
// required before generation is attempted; the upper bound on days is caller
// policy and not enforced here.
type GenerateTripRequest struct {
	Location string         `json:"location"`
	NoOfDays StringOrNumber `json:"noOfDays"`
	Traveler string         `json:"traveler"`
	Budget   string         `json:"budget"`
}

// SaveTripRequest persists a generated plan together with the selection that
// produced it.
type SaveTripRequest struct {
	TripData      json.RawMessage `json:"tripData" binding:"required"`
	UserSelection json.RawMessage `json:"userSelection" binding:"required"`
}
