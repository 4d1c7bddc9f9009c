package services

import (
	"context"
	"log"
	"strings"
	"time"

	"wanderlust/internal/ai"
	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/memcache"
	"wanderlust/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, destination string, duration int) (*response_models.GeneratedItinerary, error)
}

type ItineraryService struct {
	client ai.Client
	cache  memcache.ItineraryCache
}

func NewItineraryService(client ai.Client, cache memcache.ItineraryCache) ItineraryServiceInterface {
	return &ItineraryService{
		client: client,
		cache:  cache,
	}
}

// GenerateItinerary runs the full pipeline: prompt, one upstream call,
// extraction, schema validation. Request bounds are enforced upstream by
// binding, but the service guards them again so no caller can reach the
// upstream with a bad duration.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, destination string, duration int) (*response_models.GeneratedItinerary, error) {
	if strings.TrimSpace(destination) == "" || duration < 1 || duration > 30 {
		return nil, utils.ErrInvalidInput
	}

	if cached, ok := s.cache.Get(destination, duration); ok {
		log.Printf("Generation cache hit for %q (%d days)", destination, duration)
		return cached, nil
	}

	startTime := time.Now()
	prompt := ai.BuildItineraryPrompt(destination, duration)

	raw, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	log.Printf("Upstream generation for %q took %s", destination, time.Since(startTime))

	itinerary, err := ai.ParseItinerary(raw)
	if err != nil {
		return nil, err
	}

	s.cache.Set(destination, duration, itinerary)
	return itinerary, nil
}
