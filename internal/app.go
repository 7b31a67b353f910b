package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"

	logger_adapter "admin-console-service/internal/adapters/logger"
	"admin-console-service/internal/adapters/memstore"
	platform_api_client "admin-console-service/internal/adapters/platform_api_client"
	"admin-console-service/internal/adapters/rest"
	session_adapter "admin-console-service/internal/adapters/session"
	"admin-console-service/internal/configs"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/usecase"
	fluentlogger "admin-console-service/pkg/fluent_logger"
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИНИЦИАЛИЗАЦИЯ АДАПТЕРОВ ---
	sessionStore, err := session_adapter.NewFileSessionStore(appConfig.Session.FilePath)
	if err != nil {
		appLogger.Error("Failed to open session store", err, nil)
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	dashboardStore := memstore.NewDashboardStore()
	platformClient := platform_api_client.NewClient(appConfig.ApiClient.PlatformURL, sessionStore)
	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 4. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	loginUseCase := usecase.NewLoginUseCase(platformClient, sessionStore)
	dashboardRefreshUseCase := usecase.NewDashboardRefreshUseCase(platformClient, dashboardStore)
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(platformClient)

	propertyList := usecase.NewPropertyListController(platformClient, dashboardStore)
	requirementList := usecase.NewRequirementListController(platformClient, dashboardStore)
	amenityList := usecase.NewAmenityListController(platformClient, dashboardStore)
	packageList := usecase.NewPackageListController(platformClient, dashboardStore)
	subscriptionList := usecase.NewSubscriptionListController(platformClient, dashboardStore)
	customerList := usecase.NewCustomerListController(platformClient, dashboardStore)

	intakeForm := usecase.NewIntakeFormController(platformClient, sessionStore, propertyList)
	requirementEdit := usecase.NewRequirementEditController(platformClient)
	packageForm := usecase.NewPackageFormController(platformClient)
	subscriptionForm := usecase.NewSubscriptionFormController(platformClient)

	// --- 5. REST API Server ---
	apiHandlers := &rest.Handlers{
		Auth:          rest.NewAuthHandlers(loginUseCase, sessionStore),
		Dashboard:     rest.NewDashboardHandlers(dashboardRefreshUseCase, dashboardStore),
		Properties:    rest.NewPropertyHandlers(propertyList, getPropertyDetailsUseCase),
		PropertyForm:  rest.NewPropertyFormHandlers(intakeForm),
		Requirements:  rest.NewRequirementHandlers(requirementList, requirementEdit),
		Amenities:     rest.NewAmenityHandlers(amenityList),
		Packages:      rest.NewPackageHandlers(packageList, packageForm),
		Subscriptions: rest.NewSubscriptionHandlers(subscriptionList, subscriptionForm),
		Customers:     rest.NewCustomerHandlers(customerList),
	}
	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.UIOrigin, apiHandlers, sessionStore, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:    appConfig,
		apiServer: apiServer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Единый контекст приложения для graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
