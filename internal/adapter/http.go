package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/utils"
	"github.com/MKhiriev/notesync/models"
)

const (
	pushPath    = "/api/v1/sync/push"
	pullPath    = "/api/v1/sync/pull"
	refreshPath = "/api/v1/auth/refresh"

	idempotencyKeyHeader = "Idempotency-Key"
)

type httpSyncClient struct {
	client *utils.HTTPClient
	tokens TokenProvider

	logger *logger.Logger
}

// NewHTTPSyncClient constructs an HTTP/REST implementation of [SyncAPIClient].
// It normalises and validates endpoint and configures the underlying HTTP
// client with the resolved base URL and request timeout. tokens supplies the
// bearer token for each push and pull.
//
// Returns [ErrInvalidEndpoint] (wrapped) if endpoint is empty or cannot be
// parsed as a valid URL.
func NewHTTPSyncClient(endpoint string, timeout time.Duration, tokens TokenProvider, logger *logger.Logger) (SyncAPIClient, error) {
	baseURL, err := normalizeBaseURL(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	return &httpSyncClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		tokens: tokens,
		logger: logger,
	}, nil
}

// NewHTTPSyncClientFactory returns a [SyncAPIClientFactory] building HTTP
// clients with the request timeout from cfg.
func NewHTTPSyncClientFactory(cfg config.ClientAdapter, logger *logger.Logger) SyncAPIClientFactory {
	return func(endpoint string, tokens TokenProvider) (SyncAPIClient, error) {
		return NewHTTPSyncClient(endpoint, cfg.RequestTimeout, tokens, logger)
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include host and http(s) scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Push implements [SyncAPIClient]. It POSTs req to POST /api/v1/sync/push
// with the Idempotency-Key header set to req.IdempotencyKey.
func (h *httpSyncClient) Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	log := logger.FromContext(ctx)

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.PushResponse{}, err
	}

	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetHeader(idempotencyKeyHeader, req.IdempotencyKey).
		SetBody(req).
		Post(pushPath)
	if err != nil {
		log.Err(err).Str("func", "httpSyncClient.Push").Msg("push request failed")
		return models.PushResponse{}, mapTransportError("push request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	var out models.PushResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PushResponse{}, fmt.Errorf("decode push response: %w: %w", ErrMalformedResponse, err)
	}

	log.Debug().
		Str("func", "httpSyncClient.Push").
		Int("changes", len(req.Changes)).
		Int("applied", len(out.Applied)).
		Int("conflicts", len(out.Conflicts)).
		Msg("push acknowledged")

	return out, nil
}

// Pull implements [SyncAPIClient]. It GETs
// GET /api/v1/sync/pull?since=<cursor>&clientId=<id>; since is omitted for a
// full pull.
func (h *httpSyncClient) Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	log := logger.FromContext(ctx)

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.PullResponse{}, err
	}

	r.SetQueryParam("clientId", req.ClientID)
	if req.Since != "" {
		r.SetQueryParam("since", req.Since)
	}

	resp, err := r.Get(pullPath)
	if err != nil {
		log.Err(err).Str("func", "httpSyncClient.Pull").Msg("pull request failed")
		return models.PullResponse{}, mapTransportError("pull request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResponse{}, err
	}

	var out models.PullResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PullResponse{}, fmt.Errorf("decode pull response: %w: %w", ErrMalformedResponse, err)
	}

	return out, nil
}

// Refresh implements [SyncAPIClient]. It POSTs {"refresh_token": ...} to
// POST /api/v1/auth/refresh and returns the rotated pair. No bearer token is
// sent.
func (h *httpSyncClient) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return models.TokenPair{}, fmt.Errorf("refresh: %w: no refresh token", ErrUnauthorized)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"refresh_token": refreshToken}).
		Post(refreshPath)
	if err != nil {
		return models.TokenPair{}, mapTransportError("refresh request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	var out models.TokenPair
	if err = json.Unmarshal(resp.Body(), &out); err != nil || out.AccessToken == "" {
		return models.TokenPair{}, fmt.Errorf("decode refresh response: %w", ErrMalformedResponse)
	}

	return out, nil
}

func (h *httpSyncClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	var token string
	if h.tokens != nil {
		token = strings.TrimSpace(h.tokens.AccessToken())
	}
	if token == "" {
		return nil, fmt.Errorf("%w: no access token", ErrUnauthorized)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}
