package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/service"
	"github.com/MKhiriev/notesync/models"
)

const (
	// tokenRefreshWindow is how close to expiry the access token is
	// refreshed before a sync instead of waiting for a rejection.
	tokenRefreshWindow = time.Minute
	// finalSyncTimeout bounds the best-effort sync on shutdown.
	finalSyncTimeout = 10 * time.Second
	// maxAuthRefreshes is how many refreshes in a row an auth error may
	// trigger before sync is disabled.
	maxAuthRefreshes = 1
)

type App struct {
	services *service.ClientServices
	store    io.Closer
	cfg      config.ClientConfig
	logger   *logger.Logger

	authAttempts atomic.Int32
}

func NewApp(services *service.ClientServices, store io.Closer, cfg config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	return &App{
		services: services,
		store:    store,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run blocks until SIGINT, SIGTERM or SIGQUIT arrives or ctx is cancelled.
// SIGHUP triggers an immediate sync.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	wake := make(chan os.Signal, 1)
	signal.Notify(wake, syscall.SIGHUP)
	defer signal.Stop(wake)

	return a.run(ctx, wake)
}

func (a *App) run(ctx context.Context, wake <-chan os.Signal) error {
	ctx = a.logger.WithContext(ctx)
	defer a.shutdown()

	interrupted, err := a.services.OperationLog.Recover(ctx)
	if err != nil {
		return fmt.Errorf("recover operation log: %w", err)
	}
	if len(interrupted) > 0 {
		a.logger.Warn().Str("func", "App.run").Int("operations", len(interrupted)).Msg("previous run stopped during sync")
	}

	if err = a.enableSync(ctx); err != nil {
		return err
	}

	stopAuth := a.services.SyncEngine.OnAuthError(func(err error) { a.handleAuthError(ctx, err) })
	defer stopAuth()
	stopCompleted := a.services.SyncEngine.OnSyncComplete(func(models.SyncResult) { a.authAttempts.Store(0) })
	defer stopCompleted()

	a.services.Workers.Run(ctx)
	if a.services.AuthService.Enabled() {
		a.sync(ctx)
		a.services.SyncEngine.Start(ctx, a.cfg.Workers.SyncInterval)
	}

	for {
		select {
		case <-ctx.Done():
			a.finalSync(ctx)
			return nil
		case <-wake:
			a.logger.Debug().Str("func", "App.run").Msg("sync requested by signal")
			a.sync(ctx)
		}
	}
}

// enableSync restores sync from the local database, or enables it from
// the configured bootstrap credentials on first start.
func (a *App) enableSync(ctx context.Context) error {
	restored, err := a.services.AuthService.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore sync settings: %w", err)
	}
	if restored {
		return nil
	}

	adapterCfg := a.cfg.Adapter
	if adapterCfg.HTTPAddress == "" || adapterCfg.AccessToken == "" {
		a.logger.Info().Str("func", "App.enableSync").Msg("sync is not configured, running local only")
		return nil
	}

	err = a.services.AuthService.Enable(ctx, adapterCfg.HTTPAddress, models.TokenPair{
		AccessToken:  adapterCfg.AccessToken,
		RefreshToken: adapterCfg.RefreshToken,
	})
	if err != nil {
		return fmt.Errorf("enable sync: %w", err)
	}
	return nil
}

func (a *App) sync(ctx context.Context) {
	if !a.services.AuthService.Enabled() {
		return
	}

	if a.services.AuthService.TokenExpiresSoon(tokenRefreshWindow) {
		if _, err := a.services.AuthService.Refresh(ctx); err != nil {
			a.logger.Warn().Err(err).Str("func", "App.sync").Msg("proactive token refresh failed")
		}
	}

	if _, err := a.services.SyncEngine.SyncNow(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.sync").Str("status", string(a.services.SyncEngine.Status())).Msg("sync failed")
	}
}

// handleAuthError refreshes the tokens and syncs again. Sync is disabled
// when the refresh fails or the refreshed tokens are rejected as well.
func (a *App) handleAuthError(ctx context.Context, authErr error) {
	log := a.logger.With().Str("func", "App.handleAuthError").Logger()

	if a.authAttempts.Add(1) > maxAuthRefreshes {
		log.Error().Err(authErr).Msg("refreshed credentials rejected, disabling sync")
		a.disable(ctx)
		return
	}

	if _, err := a.services.AuthService.Refresh(ctx); err != nil {
		log.Error().Err(err).Msg("token refresh failed, disabling sync")
		a.disable(ctx)
		return
	}

	if _, err := a.services.SyncEngine.SyncNow(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Warn().Err(err).Msg("sync after token refresh failed")
	}
}

func (a *App) disable(ctx context.Context) {
	if err := a.services.AuthService.Disable(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.disable").Msg("failed to disable sync")
	}
	a.authAttempts.Store(0)
}

func (a *App) finalSync(ctx context.Context) {
	if !a.services.AuthService.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalSyncTimeout)
	defer cancel()

	if _, err := a.services.SyncEngine.SyncNow(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.finalSync").Msg("changes left pending until next start")
	}
}

func (a *App) shutdown() {
	a.services.Shutdown()
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.shutdown").Msg("failed to close local store")
	}
	a.logger.Info().Str("func", "App.shutdown").Msg("client stopped")
}
