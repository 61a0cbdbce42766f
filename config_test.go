package client

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xJijimi/estfor-api/client/internal/apitest"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetenv(t, "ESTFOR_BASE_URL", "ESTFOR_HTTP_TIMEOUT", "ESTFOR_DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Zero(t, cfg.HTTPTimeout)
	assert.False(t, cfg.Debug)
}

func TestNewFromEnv(t *testing.T) {
	srv := apitest.New(t)
	t.Setenv("ESTFOR_BASE_URL", srv.URL+"/")
	t.Setenv("ESTFOR_HTTP_TIMEOUT", "7s")
	t.Setenv("ESTFOR_DEBUG", "false")

	c, err := NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, srv.URL, c.BaseURL())
	assert.Equal(t, 7*time.Second, c.http.Timeout)

	_, err = c.GetCoreData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/core-data/", srv.Last().RequestURI)
}

func TestNewFromEnv_ExplicitOptionsWin(t *testing.T) {
	unsetenv(t, "ESTFOR_HTTP_TIMEOUT", "ESTFOR_DEBUG")
	t.Setenv("ESTFOR_BASE_URL", "http://from-env.example")
	c, err := NewFromEnv(WithBaseURL("http://explicit.example"))
	require.NoError(t, err)
	assert.Equal(t, "http://explicit.example", c.BaseURL())
}

func TestNewFromEnv_InvalidTimeout(t *testing.T) {
	unsetenv(t, "ESTFOR_BASE_URL", "ESTFOR_DEBUG")
	t.Setenv("ESTFOR_HTTP_TIMEOUT", "soon")
	_, err := NewFromEnv()
	require.Error(t, err)

	t.Setenv("ESTFOR_HTTP_TIMEOUT", "-1s")
	_, err = NewFromEnv()
	require.Error(t, err)
}
