// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/internal/utils"
	"github.com/MKhiriev/notesync/models"
)

const refreshFlightKey = "refresh"

type clientAuthService struct {
	meta    store.LocalSyncMetaRepository
	engine  ClientSyncEngine
	factory adapter.SyncAPIClientFactory
	logger  *logger.Logger
	clock   func() time.Time

	refreshes singleflight.Group

	mu       sync.RWMutex
	endpoint string
	tokens   models.TokenPair
}

func NewClientAuthService(
	storages *store.ClientStorages,
	engine ClientSyncEngine,
	factory adapter.SyncAPIClientFactory,
	logger *logger.Logger,
) ClientAuthService {
	return &clientAuthService{
		meta:    storages.SyncMetaRepository,
		engine:  engine,
		factory: factory,
		logger:  logger,
		clock:   utcNow,
	}
}

// AccessToken implements adapter.TokenProvider.
func (a *clientAuthService) AccessToken() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.tokens.AccessToken
}

func (a *clientAuthService) Enable(ctx context.Context, endpoint string, tokens models.TokenPair) error {
	log := logger.FromContext(ctx)

	if endpoint == "" {
		return ErrEmptyEndpoint
	}

	if err := a.engine.Init(endpoint, a); err != nil {
		return err
	}
	if err := a.meta.Set(ctx, models.MetaSyncEndpoint, endpoint); err != nil {
		return fmt.Errorf("store endpoint: %w", err)
	}
	if err := a.storeTokens(ctx, tokens); err != nil {
		return err
	}

	a.mu.Lock()
	a.endpoint = endpoint
	a.tokens = tokens
	a.mu.Unlock()

	log.Info().Str("func", "clientAuthService.Enable").Str("endpoint", endpoint).Msg("sync enabled")
	return nil
}

func (a *clientAuthService) Restore(ctx context.Context) (bool, error) {
	endpoint, found, err := a.meta.Get(ctx, models.MetaSyncEndpoint)
	if err != nil {
		return false, fmt.Errorf("read endpoint: %w", err)
	}
	if !found || endpoint == "" {
		return false, nil
	}

	access, _, err := a.meta.Get(ctx, models.MetaAccessToken)
	if err != nil {
		return false, fmt.Errorf("read access token: %w", err)
	}
	refresh, _, err := a.meta.Get(ctx, models.MetaRefreshToken)
	if err != nil {
		return false, fmt.Errorf("read refresh token: %w", err)
	}

	if err = a.engine.Init(endpoint, a); err != nil {
		return false, err
	}

	a.mu.Lock()
	a.endpoint = endpoint
	a.tokens = models.TokenPair{AccessToken: access, RefreshToken: refresh}
	a.mu.Unlock()

	a.logger.Info().Str("func", "clientAuthService.Restore").Str("endpoint", endpoint).Msg("sync restored")
	return true, nil
}

// Refresh implements ClientAuthService. The service invalidates a refresh
// token on use, so callers arriving while a refresh runs wait for it and
// share its result instead of sending the same token again.
func (a *clientAuthService) Refresh(ctx context.Context) (models.TokenPair, error) {
	v, err, shared := a.refreshes.Do(refreshFlightKey, func() (any, error) {
		return a.refresh(ctx)
	})
	if err != nil {
		return models.TokenPair{}, err
	}

	if shared {
		logger.FromContext(ctx).Debug().Str("func", "clientAuthService.Refresh").Msg("joined running refresh")
	}
	return v.(models.TokenPair), nil
}

func (a *clientAuthService) refresh(ctx context.Context) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	a.mu.RLock()
	endpoint := a.endpoint
	refreshToken := a.tokens.RefreshToken
	a.mu.RUnlock()

	if endpoint == "" {
		return models.TokenPair{}, ErrSyncDisabled
	}
	if refreshToken == "" {
		return models.TokenPair{}, ErrNoRefreshToken
	}

	api, err := a.factory(endpoint, a)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("create sync client: %w", err)
	}

	tokens, err := api.Refresh(ctx, refreshToken)
	if err != nil {
		log.Err(err).Str("func", "clientAuthService.refresh").Msg("token refresh failed")
		return models.TokenPair{}, fmt.Errorf("refresh tokens: %w", err)
	}
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refreshToken
	}

	if err = a.storeTokens(ctx, tokens); err != nil {
		return models.TokenPair{}, err
	}

	a.mu.Lock()
	a.tokens = tokens
	a.mu.Unlock()

	log.Info().Str("func", "clientAuthService.refresh").Msg("tokens refreshed")
	return tokens, nil
}

func (a *clientAuthService) Disable(ctx context.Context) error {
	log := logger.FromContext(ctx)

	a.engine.Reset()

	a.mu.Lock()
	a.endpoint = ""
	a.tokens = models.TokenPair{}
	a.mu.Unlock()

	if err := a.meta.Delete(ctx,
		models.MetaSyncEndpoint,
		models.MetaAccessToken,
		models.MetaRefreshToken,
		models.MetaLastSyncToken,
	); err != nil {
		log.Err(err).Str("func", "clientAuthService.Disable").Msg("failed to clear sync settings")
		return fmt.Errorf("clear sync settings: %w", err)
	}

	log.Info().Str("func", "clientAuthService.Disable").Msg("sync disabled")
	return nil
}

func (a *clientAuthService) Enabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.endpoint != ""
}

func (a *clientAuthService) TokenExpiresSoon(window time.Duration) bool {
	token := a.AccessToken()
	if token == "" {
		return false
	}
	return utils.TokenExpiresWithin(token, window, a.clock())
}

func (a *clientAuthService) storeTokens(ctx context.Context, tokens models.TokenPair) error {
	if err := a.meta.Set(ctx, models.MetaAccessToken, tokens.AccessToken); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	if err := a.meta.Set(ctx, models.MetaRefreshToken, tokens.RefreshToken); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}
