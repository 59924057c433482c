package cli

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/emogo/internal/config"
	"github.com/roach88/emogo/internal/journal"
	"github.com/roach88/emogo/internal/locate"
	"github.com/roach88/emogo/internal/media"
	"github.com/roach88/emogo/internal/store"
)

// resolveConfig layers defaults, the config file and flags.
func resolveConfig(opts *RootOptions) (config.Config, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return config.Config{}, err
	}
	cfg := config.Default(dataDir)

	path, optional := opts.ConfigPath, false
	if path == "" {
		path, optional = filepath.Join(dataDir, config.FileName), true
	}
	cfg, err = config.Load(path, cfg, optional)
	if err != nil {
		return config.Config{}, err
	}

	return cfg.Override(config.Config{DB: opts.Database, Media: opts.MediaDir}), nil
}

// session is an opened journal for the duration of one command.
type session struct {
	cfg     config.Config
	store   *store.Store
	journal *journal.Service
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}

// openSession resolves configuration, initializes the store and builds the
// journal service. Failures are reported through f.
func openSession(ctx context.Context, opts *RootOptions, f *OutputFormatter, jopts ...journal.Option) (*session, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeConfig, "failed to load configuration", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DB), 0o755); err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeStore, "failed to create database directory", err)
	}

	f.VerboseLog("opening database %s", cfg.DB)
	st, err := store.Open(ctx, cfg.DB, store.WithLogger(slog.Default()))
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeStore, "failed to open database", err)
	}

	jopts = append([]journal.Option{journal.WithLogger(slog.Default())}, jopts...)
	svc := journal.NewService(st, media.NewLibrary(cfg.Media), jopts...)

	return &session{cfg: cfg, store: st, journal: svc}, nil
}

// locationFlags holds the geotag flags shared by mood and vlog.
type locationFlags struct {
	Latitude  float64
	Longitude float64
	Place     string
}

func (l *locationFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&l.Latitude, "lat", 0, "latitude in decimal degrees (requires --lon)")
	cmd.Flags().Float64Var(&l.Longitude, "lon", 0, "longitude in decimal degrees (requires --lat)")
	cmd.Flags().StringVar(&l.Place, "place", "", "place name for the location")
}

// options turns the flags into journal options. Coordinates must be given
// as a pair; a place name without coordinates is ignored.
func (l *locationFlags) options(cmd *cobra.Command) ([]journal.Option, error) {
	hasLat := cmd.Flags().Changed("lat")
	hasLon := cmd.Flags().Changed("lon")

	switch {
	case !hasLat && !hasLon:
		return nil, nil
	case hasLat != hasLon:
		return nil, fmt.Errorf("--lat and --lon must be given together")
	case math.Abs(l.Latitude) > 90:
		return nil, fmt.Errorf("latitude %v out of range [-90, 90]", l.Latitude)
	case math.Abs(l.Longitude) > 180:
		return nil, fmt.Errorf("longitude %v out of range [-180, 180]", l.Longitude)
	}

	return []journal.Option{
		journal.WithLocator(locate.Fixed{Latitude: l.Latitude, Longitude: l.Longitude}),
		journal.WithGeocoder(locate.StaticGeocoder(l.Place)),
	}, nil
}

// commandContext returns the command's context, or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
