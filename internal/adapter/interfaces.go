// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer contract between the sync
// engine and the remote sync service.
//
// The primary abstraction is [SyncAPIClient], which decouples the engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPSyncClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// network failures by mapHTTPError and mapTransportError so that callers can
// use [errors.Is] for transport-agnostic error handling (e.g. [ErrOffline]
// when the service cannot be reached, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/notesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_api_client_mock.go -package=mock

// SyncAPIClient defines transport-agnostic communication with the sync
// service. Implementations are responsible for serialisation, authentication
// headers, and mapping transport-level errors to the sentinel values defined
// in this package.
type SyncAPIClient interface {
	// Push uploads a batch of local changes. The request's IdempotencyKey is
	// sent along so that a retried batch is applied at most once.
	Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// Pull downloads every change after req.Since that did not originate from
	// req.ClientID.
	Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error)

	// Refresh exchanges a refresh token for a new token pair. The old refresh
	// token is invalidated by the service.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
}

// TokenProvider supplies the current access token for authenticated
// requests. An empty token means the client is not signed in.
type TokenProvider interface {
	AccessToken() string
}

// TokenProviderFunc adapts a plain function to [TokenProvider].
type TokenProviderFunc func() string

// AccessToken implements [TokenProvider].
func (f TokenProviderFunc) AccessToken() string {
	return f()
}

// SyncAPIClientFactory builds a client bound to a service endpoint.
type SyncAPIClientFactory func(endpoint string, tokens TokenProvider) (SyncAPIClient, error)
