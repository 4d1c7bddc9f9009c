package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"wanderlust/internal/models/db_models"
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, userId string, req request_models.SaveTripRequest) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, userId string) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, userId string, tripId string) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, userId string, tripId string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) SaveTrip(ctx context.Context, userId string, req request_models.SaveTripRequest) (*response_models.TripResponse, error) {
	owner, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		UserID:        owner,
		Destination:   req.Destination,
		Duration:      req.Duration,
		StartDate:     req.StartDate,
		ItineraryData: datatypes.JSON(req.ItineraryData),
	}

	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildTripResponse(trip), nil
}

func (s *TripService) ListTrips(ctx context.Context, userId string) ([]response_models.TripResponse, error) {
	owner, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trips, err := s.tripRepo.ListByUserId(ctx, owner)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *buildTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) GetTrip(ctx context.Context, userId string, tripId string) (*response_models.TripResponse, error) {
	owner, id, err := parseTripIds(userId, tripId)
	if err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindByIdForUser(ctx, id, owner)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	return buildTripResponse(trip), nil
}

func (s *TripService) DeleteTrip(ctx context.Context, userId string, tripId string) error {
	owner, id, err := parseTripIds(userId, tripId)
	if err != nil {
		return err
	}

	deleted, err := s.tripRepo.DeleteByIdForUser(ctx, id, owner)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrTripNotFound
	}
	return nil
}

func parseTripIds(userId, tripId string) (uuid.UUID, uuid.UUID, error) {
	owner, err := uuid.Parse(userId)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrInvalidInput
	}
	id, err := uuid.Parse(tripId)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrInvalidInput
	}
	return owner, id, nil
}

func buildTripResponse(trip *db_models.Trip) *response_models.TripResponse {
	return &response_models.TripResponse{
		ID:            trip.ID.String(),
		Destination:   trip.Destination,
		Duration:      trip.Duration,
		StartDate:     trip.StartDate,
		ItineraryData: []byte(trip.ItineraryData),
		CreatedAt:     utils.FormatUnixRFC3339(trip.CreatedAt),
	}
}
