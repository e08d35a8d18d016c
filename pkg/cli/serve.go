package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/labchain/anamnesis/pkg/cli/config"
	httpctrl "github.com/labchain/anamnesis/pkg/controller/http"
	"github.com/labchain/anamnesis/pkg/repository/memory"
	"github.com/labchain/anamnesis/pkg/usecase"
	"github.com/labchain/anamnesis/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var appCfg config.AppConfig
	var geminiCfg config.Gemini
	var openaiCfg config.OpenAI
	var recordsCfg config.Records

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("ANAMNESIS_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, openaiCfg.Flags()...)
	flags = append(flags, recordsCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := appCfg.Configure(); err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}

			llmClient, err := config.ResolveLLMClient(ctx, &geminiCfg, &openaiCfg)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM provider")
			}

			records, err := recordsCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load record batch")
			}

			uc := usecase.New(memory.New(), llmClient, appCfg.UseCaseOptions()...)

			logging.Default().Info("Building indices from record batch",
				"records", len(records),
				"path", recordsCfg.Path(),
			)
			if err := uc.Initialize(ctx, records); err != nil {
				return goerr.Wrap(err, "failed to initialize record store and indices")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
