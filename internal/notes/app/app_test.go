package app

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/technotes/pkg/notesdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.LogLevel = "error"
	cfg.DatabaseFile = filepath.Join(dir, "notes.db")
	cfg.EventLogFile = filepath.Join(dir, "logs", "errLog.log")
	cfg.LoginLimitRequests = 2
	return cfg
}

func TestApplicationServesAndShutsDown(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	application, err := New(cfg)
	require.NoError(t, err)
	application.housekeepingService.Start()

	srv := httptest.NewServer(application.Handler())
	defer srv.Close()
	c := notesdk.NewSDKClient(srv.URL)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	_, err = c.CreateUser(ctx, notesdk.CreateUserRequest{Username: "Jan", Password: "pass", Roles: []string{"Employee"}})
	require.NoError(t, err)

	login, err := c.Login(ctx, "jan", "pass")
	require.NoError(t, err)
	require.NotEmpty(t, login.AccessToken)

	_, err = c.Login(ctx, "jan", "pass")
	require.NoError(t, err)
	_, err = c.Login(ctx, "jan", "pass")
	require.Equal(t, 429, notesdk.StatusOf(err))

	require.Equal(t, 2, application.housekeepingService.RunOnce(ctx))

	require.NoError(t, application.Shutdown())

	data, err := os.ReadFile(cfg.EventLogFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "To Many Requests")
}

func TestApplicationReopensExistingDatabase(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	for i := range 2 {
		application, err := New(cfg)
		require.NoError(t, err)
		application.housekeepingService.Start()

		srv := httptest.NewServer(application.Handler())
		c := notesdk.NewSDKClient(srv.URL)

		if i == 0 {
			_, err = c.CreateUser(ctx, notesdk.CreateUserRequest{Username: "Jan", Password: "pass", Roles: []string{"Employee"}})
			require.NoError(t, err)
		} else {
			users, err := c.ListUsers(ctx)
			require.NoError(t, err)
			require.Len(t, users, 1)
		}

		srv.Close()
		require.NoError(t, application.Shutdown())
	}
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StoreDriver = "postgres"
	_, err := OpenStore(context.Background(), cfg)
	require.Error(t, err)
}
