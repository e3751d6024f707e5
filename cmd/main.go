package main

import (
	"context"
	"log/slog"
	"os"

	"reservatenis/cmd/bootstrap"
	"reservatenis/internal/handler/middleware"
	"reservatenis/internal/pkg/config"
	"reservatenis/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func newSlogLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log)
	return logger.GetSlogLogger()
}

// @title           reservatenis
// @version         1.0
// @description     Tennis court reservation API
// @description

// @BasePath  /
// @schemes http https
// @in header
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("🚀 サーバーを起動します", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("サーバーの起動に失敗しました", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 サーバーを停止します")
			return nil
		},
	})
}

func runServe(_ *cobra.Command, _ []string) error {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			newSlogLogger,
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
		// Djangoと同様、Exitしない
	}

	slog.Info("アプリケーションが正常に停止しました")
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	var seedErr error

	app := fx.New(
		bootstrap.CoreModule,
		fx.Provide(newSlogLogger),
		fx.Invoke(
			func(userUseCase usecase.UserUseCase, courtUseCase usecase.CourtUseCase, logger *slog.Logger) {
				seedErr = bootstrap.Seed(cmd.Context(), userUseCase, courtUseCase, logger)
			},
		),
	)

	if err := app.Start(context.Background()); err != nil {
		return err
	}
	if err := app.Stop(context.Background()); err != nil {
		return err
	}
	return seedErr
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "reservatenis",
		Short:         "Tennis court reservation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Create the default admin user and courts",
			RunE:  runSeed,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		os.Exit(1)
	}
}
