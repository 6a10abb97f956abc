package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bnema/rooftop/internal/adapters/gateway/gemini"
	"github.com/bnema/rooftop/internal/adapters/repo/memory"
	chainstore "github.com/bnema/rooftop/internal/adapters/secrets/chain"
	"github.com/bnema/rooftop/internal/application"
	"github.com/bnema/rooftop/internal/config"
	"github.com/bnema/rooftop/internal/domain"
	"github.com/bnema/rooftop/internal/logging"
	"github.com/bnema/rooftop/internal/ports"
	"github.com/bnema/rooftop/internal/prefs"
)

type app struct {
	cfg         config.Config
	session     *domain.Session
	auth        *application.AuthService
	forum       *application.ForumService
	reminders   *application.ReminderService
	chat        *application.ChatService
	chatInitErr error
	secretStore ports.SecretStore
	logger      *zap.Logger
	userPrefs   prefs.Prefs
	prefsPath   string
}

func wireApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	secretStore, err := chainstore.NewEnvFirstWithFileFallback("ROOFTOP", cfg.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	logger := logging.New(cfg.LogPath, false)

	clock := ports.SystemClock{}
	a := &app{
		cfg:         cfg,
		session:     domain.NewSession(),
		auth:        application.NewAuthService(cfg.AllowedUsers, cfg.Password, clock),
		forum:       application.NewForumService(memory.NewForumRepository(), clock),
		reminders:   application.NewReminderService(cfg.WateringInterval, cfg.FertilizingInterval, clock),
		secretStore: secretStore,
		logger:      logger,
	}

	// The chatbot degrades instead of blocking startup: without an API
	// key every other page still works.
	apiKey, err := secretStore.Get(ctx, gemini.APIKeySecret)
	if err != nil {
		a.chatInitErr = err
	} else {
		gateway, err := gemini.NewClient(ctx, apiKey, cfg.GeminiModel)
		if err != nil {
			a.chatInitErr = err
		} else {
			a.chat = application.NewChatService(gateway)
		}
	}
	if a.chatInitErr != nil {
		logger.Warn("chatbot unavailable", zap.Error(a.chatInitErr))
	}

	prefsPath, err := prefs.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("wire preferences: %w", err)
	}
	a.prefsPath = prefsPath
	a.userPrefs = prefs.Load(prefsPath)

	return a, nil
}
