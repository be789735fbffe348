package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/mock"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/models"
)

// newTestAuthSvc — хелпер для создания clientAuthService с моками
func newTestAuthSvc(t *testing.T) (
	*clientAuthService,
	*mock.MockLocalSyncMetaRepository,
	*mock.MockClientSyncEngine,
	*mock.MockSyncAPIClient,
) {
	t.Helper()
	ctrl := gomock.NewController(t)

	meta := mock.NewMockLocalSyncMetaRepository(ctrl)
	engine := mock.NewMockClientSyncEngine(ctrl)
	api := mock.NewMockSyncAPIClient(ctrl)
	factory := func(endpoint string, _ adapter.TokenProvider) (adapter.SyncAPIClient, error) {
		if endpoint == "" {
			return nil, adapter.ErrInvalidEndpoint
		}
		return api, nil
	}

	storages := &store.ClientStorages{SyncMetaRepository: meta}
	svc := NewClientAuthService(storages, engine, factory, logger.Nop()).(*clientAuthService)
	return svc, meta, engine, api
}

// ── Enable ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Enable_Success(t *testing.T) {
	svc, meta, engine, _ := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		engine.EXPECT().Init("https://sync.example.com", svc).Return(nil),
		meta.EXPECT().Set(gomock.Any(), models.MetaSyncEndpoint, "https://sync.example.com").Return(nil),
		meta.EXPECT().Set(gomock.Any(), models.MetaAccessToken, "access").Return(nil),
		meta.EXPECT().Set(gomock.Any(), models.MetaRefreshToken, "refresh").Return(nil),
	)

	err := svc.Enable(ctx, "https://sync.example.com", models.TokenPair{AccessToken: "access", RefreshToken: "refresh"})
	require.NoError(t, err)
	assert.True(t, svc.Enabled())
	assert.Equal(t, "access", svc.AccessToken())
}

func TestClientAuthService_Enable_EmptyEndpoint(t *testing.T) {
	svc, _, _, _ := newTestAuthSvc(t)

	err := svc.Enable(context.Background(), "", models.TokenPair{AccessToken: "a"})
	assert.ErrorIs(t, err, ErrEmptyEndpoint)
	assert.False(t, svc.Enabled())
}

func TestClientAuthService_Enable_InvalidEndpoint(t *testing.T) {
	svc, _, engine, _ := newTestAuthSvc(t)

	engine.EXPECT().Init("::bad", svc).Return(adapter.ErrInvalidEndpoint)
	// meta.Set не вызывается

	err := svc.Enable(context.Background(), "::bad", models.TokenPair{AccessToken: "a"})
	assert.ErrorIs(t, err, adapter.ErrInvalidEndpoint)
	assert.False(t, svc.Enabled())
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Restore(t *testing.T) {
	svc, meta, engine, _ := newTestAuthSvc(t)
	ctx := context.Background()

	meta.EXPECT().Get(gomock.Any(), models.MetaSyncEndpoint).Return("https://sync.example.com", true, nil)
	meta.EXPECT().Get(gomock.Any(), models.MetaAccessToken).Return("access", true, nil)
	meta.EXPECT().Get(gomock.Any(), models.MetaRefreshToken).Return("refresh", true, nil)
	engine.EXPECT().Init("https://sync.example.com", svc).Return(nil)

	ok, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, svc.Enabled())
	assert.Equal(t, "access", svc.AccessToken())
}

func TestClientAuthService_Restore_NotConfigured(t *testing.T) {
	svc, meta, _, _ := newTestAuthSvc(t)

	meta.EXPECT().Get(gomock.Any(), models.MetaSyncEndpoint).Return("", false, nil)

	ok, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, svc.Enabled())
}

func TestClientAuthService_Restore_StoreError(t *testing.T) {
	svc, meta, _, _ := newTestAuthSvc(t)

	meta.EXPECT().Get(gomock.Any(), models.MetaSyncEndpoint).Return("", false, errors.New("database is locked"))

	_, err := svc.Restore(context.Background())
	require.Error(t, err)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func enableForTest(t *testing.T, svc *clientAuthService, meta *mock.MockLocalSyncMetaRepository, engine *mock.MockClientSyncEngine, tokens models.TokenPair) {
	t.Helper()
	engine.EXPECT().Init(gomock.Any(), gomock.Any()).Return(nil)
	meta.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	require.NoError(t, svc.Enable(context.Background(), "https://sync.example.com", tokens))
}

func TestClientAuthService_Refresh_Success(t *testing.T) {
	svc, meta, engine, api := newTestAuthSvc(t)
	ctx := context.Background()
	enableForTest(t, svc, meta, engine, models.TokenPair{AccessToken: "old", RefreshToken: "r1"})

	api.EXPECT().Refresh(gomock.Any(), "r1").Return(models.TokenPair{AccessToken: "new", RefreshToken: "r2"}, nil)
	meta.EXPECT().Set(gomock.Any(), models.MetaAccessToken, "new").Return(nil)
	meta.EXPECT().Set(gomock.Any(), models.MetaRefreshToken, "r2").Return(nil)

	got, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TokenPair{AccessToken: "new", RefreshToken: "r2"}, got)
	assert.Equal(t, "new", svc.AccessToken())
}

func TestClientAuthService_Refresh_KeepsRefreshTokenWhenNotRotated(t *testing.T) {
	svc, meta, engine, api := newTestAuthSvc(t)
	enableForTest(t, svc, meta, engine, models.TokenPair{AccessToken: "old", RefreshToken: "r1"})

	api.EXPECT().Refresh(gomock.Any(), "r1").Return(models.TokenPair{AccessToken: "new"}, nil)
	meta.EXPECT().Set(gomock.Any(), models.MetaAccessToken, "new").Return(nil)
	meta.EXPECT().Set(gomock.Any(), models.MetaRefreshToken, "r1").Return(nil)

	got, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "r1", got.RefreshToken)
}

func TestClientAuthService_Refresh_Errors(t *testing.T) {
	t.Run("sync disabled", func(t *testing.T) {
		svc, _, _, _ := newTestAuthSvc(t)
		_, err := svc.Refresh(context.Background())
		assert.ErrorIs(t, err, ErrSyncDisabled)
	})

	t.Run("no refresh token", func(t *testing.T) {
		svc, meta, engine, _ := newTestAuthSvc(t)
		enableForTest(t, svc, meta, engine, models.TokenPair{AccessToken: "a"})
		_, err := svc.Refresh(context.Background())
		assert.ErrorIs(t, err, ErrNoRefreshToken)
	})

	t.Run("rejected by server", func(t *testing.T) {
		svc, meta, engine, api := newTestAuthSvc(t)
		enableForTest(t, svc, meta, engine, models.TokenPair{AccessToken: "a", RefreshToken: "used"})
		api.EXPECT().Refresh(gomock.Any(), "used").Return(models.TokenPair{}, adapter.ErrUnauthorized)

		_, err := svc.Refresh(context.Background())
		assert.ErrorIs(t, err, adapter.ErrUnauthorized)
		assert.Equal(t, "a", svc.AccessToken(), "токены не меняются при ошибке")
	})
}

func TestClientAuthService_Refresh_SingleFlight(t *testing.T) {
	remote := newFakeRemote()
	remote.refreshGate = make(chan struct{})
	d := newDevice(t, remote)
	auth := d.services.AuthService.(*clientAuthService)
	ctx := context.Background()

	require.NoError(t, auth.Enable(ctx, "http://sync.test", models.TokenPair{AccessToken: "stale", RefreshToken: "refresh-token"}))

	const callers = 5
	results := make([]models.TokenPair, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = auth.Refresh(ctx)
		}()
	}

	require.Eventually(t, func() bool {
		remote.mu.Lock()
		defer remote.mu.Unlock()
		return remote.refreshCalls == 1
	}, time.Second, time.Millisecond)
	// даём остальным вызовам присоединиться к текущему обновлению
	time.Sleep(20 * time.Millisecond)
	close(remote.refreshGate)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, "access-1", results[i].AccessToken)
	}
	assert.Equal(t, 1, remote.refreshCalls, "refresh token отправлен один раз")
}

func TestClientAuthService_RefreshRecoversFromAuthError(t *testing.T) {
	remote := newFakeRemote()
	remote.validToken = "issued-elsewhere"
	d := newDevice(t, remote)
	auth := d.services.AuthService.(*clientAuthService)
	ctx := context.Background()

	require.NoError(t, auth.Enable(ctx, "http://sync.test", models.TokenPair{AccessToken: "stale", RefreshToken: "refresh-token"}))
	_, err := d.services.NoteService.CreateNote(ctx, []models.Block{paragraph("p1", "hello")})
	require.NoError(t, err)

	_, err = d.engine.SyncNow(ctx)
	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	_, err = auth.Refresh(ctx)
	require.NoError(t, err)

	res, err := d.engine.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pushed)

	access, _, err := d.storages.SyncMetaRepository.Get(ctx, models.MetaAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access-1", access)
}

// ── Disable ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Disable(t *testing.T) {
	remote := newFakeRemote()
	d := newDevice(t, remote)
	auth := d.services.AuthService.(*clientAuthService)
	ctx := context.Background()

	require.NoError(t, auth.Enable(ctx, "http://sync.test", models.TokenPair{AccessToken: "token", RefreshToken: "refresh-token"}))
	_, err := d.engine.SyncNow(ctx)
	require.NoError(t, err)

	require.NoError(t, auth.Disable(ctx))
	assert.False(t, auth.Enabled())
	assert.Empty(t, auth.AccessToken())

	for _, key := range []string{models.MetaSyncEndpoint, models.MetaAccessToken, models.MetaRefreshToken, models.MetaLastSyncToken} {
		_, found, err := d.storages.SyncMetaRepository.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
	// client id переживает отключение
	_, found, err := d.storages.SyncMetaRepository.Get(ctx, models.MetaClientID)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = d.engine.SyncNow(ctx)
	assert.ErrorIs(t, err, ErrEngineNotInitialized)
	assert.Equal(t, models.EngineStatusIdle, d.engine.Status())

	// после перезапуска синхронизация не восстанавливается
	restarted := openDevice(t, d.storages, remote)
	ok, err := restarted.services.AuthService.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ── TokenExpiresSoon ─────────────────────────────────────────────────────────

func TestClientAuthService_TokenExpiresSoon(t *testing.T) {
	svc, meta, engine, _ := newTestAuthSvc(t)

	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	assert.False(t, svc.TokenExpiresSoon(time.Hour), "без токена — false")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	enableForTest(t, svc, meta, engine, models.TokenPair{AccessToken: token, RefreshToken: "r"})

	assert.True(t, svc.TokenExpiresSoon(5*time.Minute))
	assert.False(t, svc.TokenExpiresSoon(10*time.Second))
}
