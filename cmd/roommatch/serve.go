package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/denisok6893-rgb/roommate-matching/internal/domain"
	httpapi "github.com/denisok6893-rgb/roommate-matching/internal/http"
	"github.com/denisok6893-rgb/roommate-matching/internal/storage"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the matching API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(opts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, err := storage.OpenSQLite(cfg.Storage.SQLitePath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.EnsureSchema(ctx); err != nil {
				return err
			}

			if cfg.Storage.SeedPath != "" {
				seed, err := storage.LoadCandidatesFromFile(cfg.Storage.SeedPath)
				if err != nil {
					log.Warn("skip seeding", zap.Error(err))
				} else {
					seed = validSeed(seed, log)
					if err := store.UpsertMany(ctx, seed); err != nil {
						return err
					}
					log.Info("seeded profiles", zap.Int("count", len(seed)))
				}
			}

			srv := &http.Server{
				Addr:              cfg.Server.Address,
				Handler:           httpapi.NewServer(newEngine(cfg, log), store, log).Routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("API listening", zap.String("address", cfg.Server.Address))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			log.Info("shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	}
}

// validSeed drops seed candidates that fail profile validation.
func validSeed(seed []domain.Candidate, log *zap.Logger) []domain.Candidate {
	v := domain.NewValidator()
	out := make([]domain.Candidate, 0, len(seed))
	for _, c := range seed {
		if err := v.Struct(c); err != nil {
			log.Warn("skip invalid seed profile", zap.String("id", c.ID), zap.Error(err))
			continue
		}
		out = append(out, c)
	}
	return out
}
