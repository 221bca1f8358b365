package prompt_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelplanner/internal/config"
	"travelplanner/internal/services"
	"travelplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvideItineraryService)

// ProvideTextGenerator creates the model client selected by MODEL_PROVIDER.
func ProvideTextGenerator(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (utils.TextGeneratorInterface, error) {
	mc := cfg.ModelConfig

	switch mc.Provider {
	case config.ProviderOpenAI:
		log.Info("initializing text generator",
			zap.String("provider", mc.Provider),
			zap.String("model", mc.OpenAIModel))
		return utils.NewOpenAITextClient(mc.OpenAIAPIKey, mc.OpenAIModel, mc.OpenAIBaseURL, mc.Temperature), nil
	case config.ProviderGemini:
		log.Info("initializing text generator",
			zap.String("provider", mc.Provider),
			zap.String("model", mc.GeminiModel))
		client, err := utils.NewGeminiTextClient(context.Background(), mc.GeminiAPIKey, mc.GeminiModel, mc.Temperature)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported model provider: %s. Use 'openai' or 'gemini'", mc.Provider)
	}
}

// ProvideItineraryService creates the itinerary service with the configured timeout.
func ProvideItineraryService(
	generator utils.TextGeneratorInterface,
	cfg *config.Config,
	log *zap.Logger,
) (services.ItineraryServiceInterface, error) {
	return services.NewItineraryService(generator, cfg.ModelConfig.Timeout, log)
}
