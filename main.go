package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *Config

	root := &cobra.Command{
		Use:           "trackfinder",
		Short:         "Find download and purchase links for music tracks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			if err := loadDotEnv(envFile); err != nil {
				return err
			}

			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}

			cfg, err = buildConfig(v)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg)
		},
	}

	registerFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "resolve <url>",
			Short: "Extract a track from a SoundCloud, YouTube or Spotify page",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				api, err := newCLIAPI(cfg)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), api.ResolveTrack(ResolveRequest{URL: args[0]}))
			},
		},
		&cobra.Command{
			Use:   "search <keywords...>",
			Short: "Search SoundCloud and build marketplace links for keywords",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				api, err := newCLIAPI(cfg)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), api.KeywordSearch(KeywordSearchRequest{Keywords: strings.Join(args, " ")}))
			},
		},
		&cobra.Command{
			Use:   "check <track_url>",
			Short: "Look for a download link on a track page",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				api, err := newCLIAPI(cfg)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), api.CheckTrack(CheckTrackRequest{TrackURL: args[0]}))
			},
		},
	)

	return root
}

func newCLIAPI(cfg *Config) (*API, error) {
	if _, err := initLogger(cfg); err != nil {
		return nil, err
	}

	return NewAPI(cfg, cfg.NewFetcher(), nil), nil
}

func printJSON(w io.Writer, body any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}

func serve(ctx context.Context, cfg *Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer shutdownLogger()

	metrics := NewMetrics()
	api := NewAPI(cfg, cfg.NewFetcher(), metrics)
	server := NewServer(cfg, api, metrics, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("listening on %s", cfg.Addr())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
