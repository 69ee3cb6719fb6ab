package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type TripServiceInterface interface {
	GenerateTrip(ctx context.Context, req request_models.GenerateTripRequest) (*response_models.TripPlan, error)
	SaveTrip(ctx context.Context, req request_models.SaveTripRequest, ownerId, ownerEmail string) (string, error)
	GetTripsByOwner(ctx context.Context, ownerId string) ([]response_models.TripSummaryResponse, error)
	GetTripById(ctx context.Context, tripId string) (*response_models.TripRecordResponse, error)
	DeleteTrip(ctx context.Context, tripId string) error
}

type TripService struct {
	tripRepo  repositories.TripRepository
	generator utils.GenerationClientInterface
}

func NewTripService(tripRepo repositories.TripRepository, generator utils.GenerationClientInterface) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		generator: generator,
	}
}

// GenerateTrip runs the generation pipeline: validate the selection, build
// the prompt, call the model once, normalize and parse the reply. Nothing is
// persisted here; saving is a separate call. Every failure is terminal, the
// user retries manually.
func (t *TripService) GenerateTrip(ctx context.Context, req request_models.GenerateTripRequest) (*response_models.TripPlan, error) {
	location := strings.TrimSpace(req.Location)
	days := strings.TrimSpace(string(req.NoOfDays))
	traveler := strings.TrimSpace(req.Traveler)
	budget := strings.TrimSpace(req.Budget)

	if location == "" || days == "" || traveler == "" || budget == "" {
		return nil, utils.ErrInvalidInput
	}
	// A zero or negative day count never reaches the model.
	if n, err := strconv.ParseFloat(days, 64); err == nil && n <= 0 {
		return nil, utils.ErrInvalidInput
	}

	prompt := utils.BuildTripPrompt(location, days, traveler, budget)

	raw, err := t.generator.GenerateTrip(ctx, prompt)
	if err != nil {
		log.Printf("Trip generation call failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	plan, err := utils.ParseTripPlan(raw)
	if err != nil {
		log.Printf("Trip plan parse failed: %v", err)
		return nil, err
	}

	return plan, nil
}

// SaveTrip wraps a generated plan and its originating selection into a trip
// record owned by the caller. Location and budget tips are lifted out of the
// plan document for the list view.
func (t *TripService) SaveTrip(ctx context.Context, req request_models.SaveTripRequest, ownerId, ownerEmail string) (string, error) {
	if len(req.TripData) == 0 || ownerId == "" {
		return "", utils.ErrInvalidInput
	}

	var plan response_models.TripPlan
	if err := json.Unmarshal(req.TripData, &plan); err != nil {
		return "", utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		OwnerID:       ownerId,
		OwnerEmail:    ownerEmail,
		Location:      plan.TripDetails.Location,
		TripPlan:      db_models.JSONB(req.TripData),
		UserSelection: db_models.JSONB(req.UserSelection),
		BudgetTips:    pq.StringArray(plan.BudgetTips),
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return "", utils.ErrDatabaseError
	}

	return trip.ID.String(), nil
}

// GetTripsByOwner returns the owner's saved trips newest first. An empty
// owner id yields an empty list, not an error.
func (t *TripService) GetTripsByOwner(ctx context.Context, ownerId string) ([]response_models.TripSummaryResponse, error) {
	if ownerId == "" {
		return []response_models.TripSummaryResponse{}, nil
	}

	trips, err := t.tripRepo.ListByOwner(ctx, ownerId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripSummaryResponse, 0, len(trips))
	for _, trip := range trips {
		out = append(out, response_models.TripSummaryResponse{
			ID:            trip.ID.String(),
			Location:      trip.Location,
			BudgetTips:    []string(trip.BudgetTips),
			UserSelection: json.RawMessage(trip.UserSelection),
			CreatedAt:     trip.CreatedAt,
		})
	}
	return out, nil
}

func (t *TripService) GetTripById(ctx context.Context, tripId string) (*response_models.TripRecordResponse, error) {
	trip, err := t.tripRepo.GetById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	return &response_models.TripRecordResponse{
		ID:            trip.ID.String(),
		TripData:      json.RawMessage(trip.TripPlan),
		UserSelection: json.RawMessage(trip.UserSelection),
		UserEmail:     trip.OwnerEmail,
		CreatedAt:     trip.CreatedAt,
	}, nil
}

// DeleteTrip removes a trip; deleting an id that no longer exists succeeds.
func (t *TripService) DeleteTrip(ctx context.Context, tripId string) error {
	if err := t.tripRepo.DeleteById(ctx, tripId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
