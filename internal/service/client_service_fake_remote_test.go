package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/models"
)

// fakeRemote — in-memory сервер синхронизации: журнал изменений с
// курсорами вида %08d, кэш ответов по idempotency key и исключение
// собственных изменений клиента при pull.
type fakeRemote struct {
	mu sync.Mutex

	log        []remoteEntry
	notes      map[string]json.RawMessage
	tasks      map[string]json.RawMessage
	deleted    map[string]bool
	responses  map[string]models.PushResponse
	lastPulled map[string]int

	conflictIDs map[string]string
	validToken  string
	offline     bool
	// failAfterApply applies the next push and then reports a server error,
	// as if the connection dropped before the client saw the answer.
	failAfterApply bool
	// onPush runs inside Push before the batch is applied.
	onPush func(req models.PushRequest)

	pushCalls    int
	appliedPush  int
	refreshCalls int
	refreshGate  chan struct{}
}

type remoteEntry struct {
	seq    int
	origin string
	change models.EntityChange
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		notes:       make(map[string]json.RawMessage),
		tasks:       make(map[string]json.RawMessage),
		deleted:     make(map[string]bool),
		responses:   make(map[string]models.PushResponse),
		lastPulled:  make(map[string]int),
		conflictIDs: make(map[string]string),
	}
}

func cursor(seq int) string {
	return fmt.Sprintf("%08d", seq)
}

// factory returns a SyncAPIClientFactory whose clients talk to r.
func (r *fakeRemote) factory() adapter.SyncAPIClientFactory {
	return func(endpoint string, tokens adapter.TokenProvider) (adapter.SyncAPIClient, error) {
		if endpoint == "" {
			return nil, adapter.ErrInvalidEndpoint
		}
		return &fakeConn{remote: r, tokens: tokens}, nil
	}
}

func (r *fakeRemote) setOffline(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offline = v
}

func (r *fakeRemote) counts() (notes, tasks int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes), len(r.tasks)
}

func (r *fakeRemote) task(t *testing.T, id string) models.TaskPayload {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok := r.tasks[id]
	require.True(t, ok, "task %s not on server", id)
	var p models.TaskPayload
	require.NoError(t, json.Unmarshal(raw, &p))
	return p
}

func (r *fakeRemote) push(req models.PushRequest) (models.PushResponse, error) {
	if r.onPush != nil {
		r.onPush(req)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pushCalls++
	if r.offline {
		return models.PushResponse{}, adapter.ErrOffline
	}
	if cached, ok := r.responses[req.IdempotencyKey]; ok {
		return cached, nil
	}

	r.appliedPush++
	resp := models.PushResponse{Applied: []string{}, Conflicts: []models.ConflictInfo{}}
	for _, c := range req.Changes {
		id := c.EntityID()
		if reason, ok := r.conflictIDs[id]; ok {
			resp.Conflicts = append(resp.Conflicts, models.ConflictInfo{ID: id, Type: c.Type, Reason: reason})
			continue
		}

		switch {
		case c.Operation == models.OperationDelete:
			r.deleted[id] = true
		case c.Type == models.EntityTypeNote:
			r.notes[id] = c.Data
		default:
			r.tasks[id] = c.Data
		}
		r.log = append(r.log, remoteEntry{seq: len(r.log) + 1, origin: req.ClientID, change: c})
		resp.Applied = append(resp.Applied, id)
	}
	// the cursor a client may safely resume from is the last one it pulled
	resp.SyncToken = cursor(r.lastPulled[req.ClientID])
	r.responses[req.IdempotencyKey] = resp

	if r.failAfterApply {
		r.failAfterApply = false
		return models.PushResponse{}, adapter.ErrServer
	}
	return resp, nil
}

func (r *fakeRemote) pull(req models.PullRequest) (models.PullResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.offline {
		return models.PullResponse{}, adapter.ErrOffline
	}

	since := 0
	if req.Since != "" {
		v, err := strconv.Atoi(req.Since)
		if err != nil {
			return models.PullResponse{}, adapter.ErrBadRequest
		}
		since = v
	}

	resp := models.PullResponse{Changes: models.PullChanges{
		Notes: []models.EntityChange{},
		Tasks: []models.EntityChange{},
	}}
	for _, e := range r.log {
		if e.seq <= since || e.origin == req.ClientID {
			continue
		}
		if e.change.Type == models.EntityTypeNote {
			resp.Changes.Notes = append(resp.Changes.Notes, e.change)
		} else {
			resp.Changes.Tasks = append(resp.Changes.Tasks, e.change)
		}
	}

	head := len(r.log)
	r.lastPulled[req.ClientID] = head
	resp.SyncToken = cursor(head)
	return resp, nil
}

type fakeConn struct {
	remote *fakeRemote
	tokens adapter.TokenProvider
}

func (c *fakeConn) authorize() error {
	c.remote.mu.Lock()
	valid := c.remote.validToken
	c.remote.mu.Unlock()

	token := c.tokens.AccessToken()
	if token == "" || (valid != "" && token != valid) {
		return adapter.ErrUnauthorized
	}
	return nil
}

func (c *fakeConn) Push(_ context.Context, req models.PushRequest) (models.PushResponse, error) {
	if err := c.authorize(); err != nil {
		return models.PushResponse{}, err
	}
	return c.remote.push(req)
}

func (c *fakeConn) Pull(_ context.Context, req models.PullRequest) (models.PullResponse, error) {
	if err := c.authorize(); err != nil {
		return models.PullResponse{}, err
	}
	return c.remote.pull(req)
}

func (c *fakeConn) Refresh(_ context.Context, refreshToken string) (models.TokenPair, error) {
	r := c.remote
	r.mu.Lock()
	r.refreshCalls++
	n := r.refreshCalls
	gate := r.refreshGate
	r.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if refreshToken != "refresh-token" {
		return models.TokenPair{}, adapter.ErrUnauthorized
	}
	pair := models.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", n),
		RefreshToken: "refresh-token",
	}

	r.mu.Lock()
	r.validToken = pair.AccessToken
	r.mu.Unlock()
	return pair, nil
}

// staticTokens is a TokenProvider returning a fixed token.
type staticTokens string

func (s staticTokens) AccessToken() string { return string(s) }

// device is one client installation: its own SQLite file and services.
type device struct {
	storages *store.ClientStorages
	services *ClientServices
	engine   *clientSyncEngine
}

func testClientConfig() config.ClientConfig {
	return config.ClientConfig{
		Workers: config.ClientWorkers{
			// retries never fire inside a test unless a test asks for it
			RetryBase:        time.Hour,
			RetryMaxExponent: 2,
		},
	}
}

func newDevice(t *testing.T, remote *fakeRemote) *device {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "notes.db")
	storages, err := store.NewClientStorages(context.Background(),
		config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)

	d := openDevice(t, storages, remote)
	t.Cleanup(func() { _ = storages.Close() })
	return d
}

// openDevice builds fresh services over existing storages, like a process
// restart does.
func openDevice(t *testing.T, storages *store.ClientStorages, remote *fakeRemote) *device {
	t.Helper()

	services := NewClientServices(storages, remote.factory(), testClientConfig(), logger.Nop())
	t.Cleanup(services.Shutdown)

	engine := services.SyncEngine.(*clientSyncEngine)
	require.NoError(t, engine.Init("http://sync.test", staticTokens("token")))

	return &device{storages: storages, services: services, engine: engine}
}

func paragraph(id, text string) models.Block {
	return models.Block{
		ID:      id,
		Type:    models.BlockTypeParagraph,
		Content: []models.InlineContent{{Type: models.InlineTypeText, Text: text}},
	}
}

func checkItem(id, text string, checked bool) models.Block {
	return models.Block{
		ID:      id,
		Type:    models.BlockTypeCheckListItem,
		Props:   map[string]any{models.PropChecked: checked},
		Content: []models.InlineContent{{Type: models.InlineTypeText, Text: text}},
	}
}
