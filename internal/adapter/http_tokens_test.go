package adapter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/mock"
	"github.com/MKhiriev/notesync/models"
)

func TestHTTPSyncClient_ReadsTokenOnEveryRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenProvider(ctrl)

	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.PullResponse{SyncToken: "0000000001"})
	}))
	defer srv.Close()

	// токен обновился между запросами — клиент берёт актуальный
	gomock.InOrder(
		tokens.EXPECT().AccessToken().Return("access-1"),
		tokens.EXPECT().AccessToken().Return(" access-2 "),
		tokens.EXPECT().AccessToken().Return(""),
	)

	c, err := adapter.NewHTTPSyncClient(srv.URL, 2*time.Second, tokens, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = c.Pull(ctx, models.PullRequest{ClientID: "client-1"})
	require.NoError(t, err)
	_, err = c.Pull(ctx, models.PullRequest{ClientID: "client-1"})
	require.NoError(t, err)
	_, err = c.Pull(ctx, models.PullRequest{ClientID: "client-1"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	assert.Equal(t, []string{"Bearer access-1", "Bearer access-2"}, seen)
}
