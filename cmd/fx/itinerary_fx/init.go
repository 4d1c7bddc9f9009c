// cmd/fx/itinerary_fx/init.go
package itinerary_fx

import (
	"log"
	"time"

	"go.uber.org/fx"
	"wanderlust/internal/ai"
	"wanderlust/internal/api/controllers"
	"wanderlust/internal/config"
	"wanderlust/internal/services"
	"wanderlust/pkg/memcache"
)

var Module = fx.Provide(
	provideAIClient,
	provideGenerationCache,
	provideItineraryService,
	controllers.NewItineraryController,
)

func provideAIClient(cfg *config.Config) (ai.Client, error) {
	log.Printf("Initializing %s generation client with model: %s", cfg.AI.Provider, cfg.AI.Model)
	return ai.NewClient(cfg.AI)
}

func provideGenerationCache(cfg *config.Config) memcache.ItineraryCache {
	return memcache.NewItineraryCache(time.Duration(cfg.AI.CacheTTL) * time.Second)
}

func provideItineraryService(client ai.Client, cache memcache.ItineraryCache) services.ItineraryServiceInterface {
	return services.NewItineraryService(client, cache)
}
