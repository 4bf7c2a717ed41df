package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/adapter"
	"github.com/t-okazaki/satchel/pkg/repository"
	"github.com/t-okazaki/satchel/pkg/usecase/assistant"
	"github.com/t-okazaki/satchel/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// config holds configuration values
type config struct {
	logLevel string

	// Repository / storage
	project  string
	database string
	bucket   string

	// LLM providers, in fallback order
	geminiAPIKey    string
	geminiModel     string
	groqAPIKey      string
	groqModel       string
	anthropicAPIKey string

	// Enrichment sources
	youtubeAPIKey string
	mapsAPIKey    string

	// Documents
	extractorURL string

	// Orchestration
	vocabPath           string
	enrichWhileGrounded bool
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("SATCHEL_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Google Cloud project ID",
			Sources:     cli.EnvVars("GOOGLE_CLOUD_PROJECT"),
			Destination: &cfg.project,
		},
		&cli.StringFlag{
			Name:        "database",
			Aliases:     []string{"d"},
			Usage:       "Firestore database ID",
			Value:       "(default)",
			Sources:     cli.EnvVars("FIRESTORE_DATABASE_ID"),
			Destination: &cfg.database,
		},
		&cli.StringFlag{
			Name:        "bucket",
			Usage:       "Cloud Storage bucket for document text and chat payloads",
			Sources:     cli.EnvVars("SATCHEL_BUCKET"),
			Destination: &cfg.bucket,
		},
	}
}

// llmFlags returns flags for LLM-related configuration with destination config
func llmFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key (primary provider)",
			Sources:     cli.EnvVars("GEMINI_API_KEY"),
			Destination: &cfg.geminiAPIKey,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini generative model",
			Sources:     cli.EnvVars("SATCHEL_GEMINI_MODEL"),
			Destination: &cfg.geminiModel,
		},
		&cli.StringFlag{
			Name:        "groq-api-key",
			Usage:       "Groq API key (fallback provider)",
			Sources:     cli.EnvVars("GROQ_API_KEY"),
			Destination: &cfg.groqAPIKey,
		},
		&cli.StringFlag{
			Name:        "groq-model",
			Usage:       "Groq model",
			Sources:     cli.EnvVars("SATCHEL_GROQ_MODEL"),
			Destination: &cfg.groqModel,
		},
		&cli.StringFlag{
			Name:        "anthropic-api-key",
			Usage:       "Anthropic API key (last-resort provider)",
			Sources:     cli.EnvVars("ANTHROPIC_API_KEY"),
			Destination: &cfg.anthropicAPIKey,
		},
	}
}

// searchFlags returns flags for the enrichment sources and orchestration policy
func searchFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "youtube-api-key",
			Usage:       "YouTube Data API key for video enrichment",
			Sources:     cli.EnvVars("YOUTUBE_API_KEY"),
			Destination: &cfg.youtubeAPIKey,
		},
		&cli.StringFlag{
			Name:        "maps-api-key",
			Usage:       "Google Maps API key for place enrichment and geolocation",
			Sources:     cli.EnvVars("MAPS_API_KEY"),
			Destination: &cfg.mapsAPIKey,
		},
		&cli.StringFlag{
			Name:        "vocab",
			Usage:       "Path to YAML file overriding the intent vocabulary",
			Sources:     cli.EnvVars("SATCHEL_VOCAB"),
			Destination: &cfg.vocabPath,
		},
		&cli.BoolFlag{
			Name:        "enrich-while-grounded",
			Usage:       "Run video/place enrichment even when a document grounds the turn",
			Sources:     cli.EnvVars("SATCHEL_ENRICH_WHILE_GROUNDED"),
			Destination: &cfg.enrichWhileGrounded,
		},
	}
}

// docFlags returns flags for the document extraction service
func docFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "extractor-url",
			Usage:       "Base URL of the PDF extraction service",
			Value:       "http://localhost:8081",
			Sources:     cli.EnvVars("SATCHEL_EXTRACTOR_URL"),
			Destination: &cfg.extractorURL,
		},
	}
}

// loggerContext attaches a logger at the configured level to the context
func (cfg *config) loggerContext(ctx context.Context) context.Context {
	logger := logging.New(cfg.logLevel, os.Stderr)
	logging.SetDefault(logger)
	return logging.With(ctx, logger)
}

// newRepository creates a new repository instance
func (cfg *config) newRepository(ctx context.Context) (*repository.Firestore, error) {
	if cfg.project == "" {
		return nil, goerr.New("project is required")
	}
	if cfg.database == "" {
		return nil, goerr.New("database is required")
	}

	repo, err := repository.New(ctx, cfg.project, cfg.database)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository")
	}
	return repo, nil
}

// newStorage creates a new Storage adapter instance
func (cfg *config) newStorage(ctx context.Context) (adapter.Storage, error) {
	if cfg.bucket == "" {
		return nil, goerr.New("bucket is required")
	}

	storage, err := adapter.NewStorage(ctx, cfg.bucket)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage")
	}
	return storage, nil
}

// newInvoker builds the provider chain from whatever keys are configured.
// Order is fixed: gemini, then groq, then claude.
func (cfg *config) newInvoker(ctx context.Context) (*assistant.Invoker, error) {
	var providers []assistant.Provider

	if cfg.geminiAPIKey != "" {
		opts := []adapter.GeminiOption{
			adapter.WithSystemPrompt(assistant.SystemPrompt),
		}
		if cfg.geminiModel != "" {
			opts = append(opts, adapter.WithGenerativeModel(cfg.geminiModel))
		}
		gemini, err := adapter.NewGemini(ctx, cfg.geminiAPIKey, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create gemini provider")
		}
		providers = append(providers, gemini)
	}

	if cfg.groqAPIKey != "" {
		var opts []adapter.GroqOption
		if cfg.groqModel != "" {
			opts = append(opts, adapter.WithGroqModel(cfg.groqModel))
		}
		groq, err := adapter.NewGroq(cfg.groqAPIKey, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create groq provider")
		}
		providers = append(providers, groq)
	}

	if cfg.anthropicAPIKey != "" {
		providers = append(providers, adapter.NewClaude(cfg.anthropicAPIKey))
	}

	if len(providers) == 0 {
		return nil, goerr.New("at least one LLM provider must be configured")
	}

	return assistant.NewInvoker(providers...), nil
}

// newVideoSearcher creates the video gatherer, or nil when not configured
func (cfg *config) newVideoSearcher(ctx context.Context) (assistant.VideoSearcher, error) {
	if cfg.youtubeAPIKey == "" {
		return nil, nil
	}

	yt, err := adapter.NewYouTube(ctx, cfg.youtubeAPIKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create youtube adapter")
	}
	return yt, nil
}

// newPlaces creates the place gatherer and locator, or nil when not configured
func (cfg *config) newPlaces() (*adapter.Places, error) {
	if cfg.mapsAPIKey == "" {
		return nil, nil
	}

	places, err := adapter.NewPlaces(cfg.mapsAPIKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create places adapter")
	}
	return places, nil
}

// newExtractor creates the extraction service client
func (cfg *config) newExtractor() adapter.Extractor {
	return adapter.NewExtractor(cfg.extractorURL)
}

// newVocabulary loads the intent vocabulary, using defaults unless a file
// is configured
func (cfg *config) newVocabulary() (*assistant.Vocabulary, error) {
	if cfg.vocabPath == "" {
		return assistant.DefaultVocabulary(), nil
	}

	vocab, err := assistant.LoadVocabulary(cfg.vocabPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load vocabulary")
	}
	return vocab, nil
}
