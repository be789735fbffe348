package client

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/mock"
	"github.com/MKhiriev/notesync/internal/service"
	"github.com/MKhiriev/notesync/internal/workers"
	"github.com/MKhiriev/notesync/models"
)

type closerSpy struct {
	closed atomic.Int32
}

func (c *closerSpy) Close() error {
	c.closed.Add(1)
	return nil
}

type appMocks struct {
	opLog  *mock.MockClientOperationLog
	engine *mock.MockClientSyncEngine
	auth   *mock.MockClientAuthService
	store  *closerSpy

	authErrorFn    func(error)
	syncCompleteFn func(models.SyncResult)
}

// newTestApp — хелпер: App поверх моков сервисов
func newTestApp(t *testing.T, cfg config.ClientConfig) (*App, *appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &appMocks{
		opLog:  mock.NewMockClientOperationLog(ctrl),
		engine: mock.NewMockClientSyncEngine(ctrl),
		auth:   mock.NewMockClientAuthService(ctrl),
		store:  &closerSpy{},
	}
	services := &service.ClientServices{
		OperationLog: m.opLog,
		SyncEngine:   m.engine,
		AuthService:  m.auth,
		Workers:      workers.NewWorkers(),
	}

	app, err := NewApp(services, m.store, cfg, logger.Nop())
	require.NoError(t, err)
	return app, m
}

// expectLifecycle регистрирует вызовы, которые делает любой запуск
func (m *appMocks) expectLifecycle() {
	m.opLog.EXPECT().Recover(gomock.Any()).Return(nil, nil)
	m.engine.EXPECT().OnAuthError(gomock.Any()).DoAndReturn(func(fn func(error)) func() {
		m.authErrorFn = fn
		return func() {}
	})
	m.engine.EXPECT().OnSyncComplete(gomock.Any()).DoAndReturn(func(fn func(models.SyncResult)) func() {
		m.syncCompleteFn = fn
		return func() {}
	})
	m.engine.EXPECT().Shutdown()
}

func cancelled() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestNewApp_NilServices(t *testing.T) {
	_, err := NewApp(nil, nil, config.ClientConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestApp_Run_LocalOnly(t *testing.T) {
	app, m := newTestApp(t, config.ClientConfig{})
	m.expectLifecycle()
	m.auth.EXPECT().Restore(gomock.Any()).Return(false, nil)
	m.auth.EXPECT().Enabled().Return(false).AnyTimes()
	// SyncNow и Start не вызываются

	require.NoError(t, app.run(cancelled(), nil))
	assert.Equal(t, int32(1), m.store.closed.Load())
}

func TestApp_Run_RestoredSyncsOnStartWakeAndExit(t *testing.T) {
	cfg := config.ClientConfig{Workers: config.ClientWorkers{SyncInterval: time.Minute}}
	app, m := newTestApp(t, cfg)
	m.expectLifecycle()

	m.auth.EXPECT().Restore(gomock.Any()).Return(true, nil)
	m.auth.EXPECT().Enabled().Return(true).AnyTimes()
	m.auth.EXPECT().TokenExpiresSoon(tokenRefreshWindow).Return(false).AnyTimes()
	m.engine.EXPECT().Start(gomock.Any(), time.Minute)

	synced := make(chan struct{}, 3)
	m.engine.EXPECT().SyncNow(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.SyncResult, error) {
		synced <- struct{}{}
		return models.SyncResult{}, nil
	}).Times(3)

	ctx, cancel := context.WithCancel(context.Background())
	wake := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- app.run(ctx, wake) }()

	<-synced // при запуске
	wake <- syscall.SIGHUP
	<-synced // по сигналу
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("run не завершился после отмены контекста")
	}
	<-synced // финальная
	assert.Equal(t, int32(1), m.store.closed.Load())
}

func TestApp_Run_BootstrapFromConfig(t *testing.T) {
	cfg := config.ClientConfig{Adapter: config.ClientAdapter{
		HTTPAddress:  "https://sync.example.com",
		AccessToken:  "access",
		RefreshToken: "refresh",
	}}
	app, m := newTestApp(t, cfg)
	m.expectLifecycle()

	m.auth.EXPECT().Restore(gomock.Any()).Return(false, nil)
	m.auth.EXPECT().Enable(gomock.Any(), "https://sync.example.com",
		models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}).Return(nil)
	m.auth.EXPECT().Enabled().Return(true).AnyTimes()
	m.auth.EXPECT().TokenExpiresSoon(gomock.Any()).Return(false).AnyTimes()
	m.engine.EXPECT().Start(gomock.Any(), time.Duration(0))
	// при запуске и финальная
	m.engine.EXPECT().SyncNow(gomock.Any()).Return(models.SyncResult{}, nil).Times(2)

	require.NoError(t, app.run(cancelled(), nil))
}

func TestApp_Run_RecoverError(t *testing.T) {
	app, m := newTestApp(t, config.ClientConfig{})
	m.opLog.EXPECT().Recover(gomock.Any()).Return(nil, errors.New("no such table"))
	m.engine.EXPECT().Shutdown()

	err := app.run(cancelled(), nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), m.store.closed.Load(), "хранилище закрывается и при ошибке")
}

func TestApp_Sync_RefreshesExpiringToken(t *testing.T) {
	app, m := newTestApp(t, config.ClientConfig{})

	gomock.InOrder(
		m.auth.EXPECT().Enabled().Return(true),
		m.auth.EXPECT().TokenExpiresSoon(tokenRefreshWindow).Return(true),
		m.auth.EXPECT().Refresh(gomock.Any()).Return(models.TokenPair{AccessToken: "new"}, nil),
		m.engine.EXPECT().SyncNow(gomock.Any()).Return(models.SyncResult{}, nil),
	)

	app.sync(context.Background())
}

func TestApp_Sync_FailureIsLogged(t *testing.T) {
	app, m := newTestApp(t, config.ClientConfig{})

	m.auth.EXPECT().Enabled().Return(true)
	m.auth.EXPECT().TokenExpiresSoon(gomock.Any()).Return(false)
	m.engine.EXPECT().SyncNow(gomock.Any()).Return(models.SyncResult{}, adapter.ErrOffline)
	m.engine.EXPECT().Status().Return(models.EngineStatusOffline)

	app.sync(context.Background())
}

func TestApp_HandleAuthError(t *testing.T) {
	t.Run("refresh then sync", func(t *testing.T) {
		app, m := newTestApp(t, config.ClientConfig{})
		gomock.InOrder(
			m.auth.EXPECT().Refresh(gomock.Any()).Return(models.TokenPair{AccessToken: "new"}, nil),
			m.engine.EXPECT().SyncNow(gomock.Any()).Return(models.SyncResult{}, nil),
		)

		app.handleAuthError(context.Background(), adapter.ErrUnauthorized)
	})

	t.Run("refresh fails", func(t *testing.T) {
		app, m := newTestApp(t, config.ClientConfig{})
		m.auth.EXPECT().Refresh(gomock.Any()).Return(models.TokenPair{}, adapter.ErrUnauthorized)
		m.auth.EXPECT().Disable(gomock.Any()).Return(nil)

		app.handleAuthError(context.Background(), adapter.ErrUnauthorized)
	})

	t.Run("refreshed tokens rejected again", func(t *testing.T) {
		app, m := newTestApp(t, config.ClientConfig{})
		m.auth.EXPECT().Refresh(gomock.Any()).Return(models.TokenPair{AccessToken: "new"}, nil)
		m.engine.EXPECT().SyncNow(gomock.Any()).Return(models.SyncResult{}, adapter.ErrUnauthorized)
		m.auth.EXPECT().Disable(gomock.Any()).Return(nil)

		app.handleAuthError(context.Background(), adapter.ErrUnauthorized)
		// повторная ошибка авторизации — обновление не повторяется
		app.handleAuthError(context.Background(), adapter.ErrUnauthorized)
	})
}

func TestApp_Run_AuthCallbackWired(t *testing.T) {
	app, m := newTestApp(t, config.ClientConfig{})
	m.expectLifecycle()
	m.auth.EXPECT().Restore(gomock.Any()).Return(false, nil)
	m.auth.EXPECT().Enabled().Return(false).AnyTimes()

	require.NoError(t, app.run(cancelled(), nil))
	require.NotNil(t, m.authErrorFn)
	require.NotNil(t, m.syncCompleteFn)

	app.authAttempts.Store(maxAuthRefreshes)
	m.syncCompleteFn(models.SyncResult{})
	assert.Zero(t, app.authAttempts.Load())
}
