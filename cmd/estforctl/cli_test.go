package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xJijimi/estfor-api/client"
	"github.com/0xJijimi/estfor-api/client/internal/apitest"
)

// run executes estforctl against srv with no config file in reach.
func run(t *testing.T, srv *apitest.Server, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--base-url", srv.URL}, args...))
	err := root.Execute()
	return stdout.String(), err
}

func TestGetPlayerByID(t *testing.T) {
	srv := apitest.New(t)
	out, err := run(t, srv, "get", "players", "42")
	require.NoError(t, err)

	var p client.Player
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "42", p.ID)
	assert.Equal(t, "bob", p.Name)
	assert.Equal(t, "/players/42", srv.Last().RequestURI)
	assert.Contains(t, out, "\n  \"id\": \"42\"", "output is indented")
}

func TestGetPlayers_FlagsBecomeQuery(t *testing.T) {
	srv := apitest.New(t)
	out, err := run(t, srv, "get", "players", "--fetch", "5", "--order-by", "xp", "--param", "isActive=true")
	require.NoError(t, err)

	var page client.Page[client.Player]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "/players/?numToFetch=5&orderBy=xp&isActive=true", srv.Last().RequestURI)
}

func TestGetActivities_RepeatedParam(t *testing.T) {
	srv := apitest.New(t)
	_, err := run(t, srv, "get", "activities", "0xabc",
		"--param", "activityTypesToSkip=A", "--param", "activityTypesToSkip=B", "--skip", "0")
	require.NoError(t, err)
	assert.Equal(t, "/activities/0xabc?activityTypesToSkip=A&activityTypesToSkip=B&numToSkip=0", srv.Last().RequestURI)
}

func TestGet_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown resource", []string{"get", "dragons"}, "unknown resource"},
		{"missing key", []string{"get", "user-item-nfts"}, "requires <userAddress>"},
		{"unexpected key", []string{"get", "avatars", "1"}, "does not take an argument"},
		{"unknown param", []string{"get", "clans", "--param", "colour=red"}, "does not accept --param colour"},
		{"bad bool", []string{"get", "players", "--param", "isActive=maybe"}, "--param isActive"},
		{"malformed param", []string{"get", "players", "--param", "isActive"}, "want key=value"},
		{"pagination on plain", []string{"get", "core-data", "--fetch", "1"}, "does not accept pagination"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := apitest.New(t)
			_, err := run(t, srv, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, srv.Requests(), "validation must happen before any request")
		})
	}
}

func TestGet_APIErrorSurfaces(t *testing.T) {
	srv := apitest.New(t)
	_, err := run(t, srv, "get", "players", "999")
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
	assert.Equal(t, "failed to fetch player by id: 404", err.Error())
}

func TestResourcesCoverTable(t *testing.T) {
	srv := apitest.New(t)
	out, err := run(t, srv, "resources")
	require.NoError(t, err)
	for name := range resources {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "players [id]")
	assert.Contains(t, out, "user-item-nfts <userAddress>")
	assert.Empty(t, srv.Requests())
}

func TestEveryListResourceHitsItsPath(t *testing.T) {
	srv := apitest.New(t)
	for name, r := range resources {
		if r.list == nil {
			continue
		}
		_, err := run(t, srv, "get", name)
		require.NoError(t, err, name)
		assert.Equal(t, "/"+name+"/", srv.Last().RequestURI, name)
	}
}

func TestMulti(t *testing.T) {
	srv := apitest.New(t)
	out, err := run(t, srv, "multi", "players", "1", "42")
	require.NoError(t, err)

	var players []client.Player
	require.NoError(t, json.Unmarshal([]byte(out), &players))
	assert.Len(t, players, 2)

	last := srv.Last()
	assert.Equal(t, http.MethodPost, last.Method)
	assert.JSONEq(t, `{"playerIds":["1","42"]}`, string(last.Body))

	_, err = run(t, srv, "multi", "clans", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown batch resource")
}

func TestEquipment(t *testing.T) {
	srv := apitest.New(t)
	out, err := run(t, srv, "equipment", "0xabc", "1", "FIRE MAKING")
	require.NoError(t, err)
	assert.Equal(t, "/last-full-equipments/0xabc/1/FIRE%20MAKING", srv.Last().RequestURI)
	assert.Contains(t, out, `"skill": "FIRE MAKING"`)
}

func TestSubgraphHealth_Wait(t *testing.T) {
	t.Setenv("ESTFORCTL_HEALTH_INITIAL_INTERVAL", "1ms")
	t.Setenv("ESTFORCTL_HEALTH_MAX_INTERVAL", "5ms")

	srv := apitest.New(t)
	srv.SyncAfter(2)
	out, err := run(t, srv, "subgraph-health", "--wait", "--max-wait", "5s")
	require.NoError(t, err)
	assert.Contains(t, out, `"synced": true`)
	assert.Len(t, srv.Requests(), 3)
}

func TestSubgraphHealth_WaitGivesUp(t *testing.T) {
	t.Setenv("ESTFORCTL_HEALTH_INITIAL_INTERVAL", "1ms")
	t.Setenv("ESTFORCTL_HEALTH_MAX_INTERVAL", "5ms")

	srv := apitest.New(t)
	srv.SyncAfter(1 << 20)
	out, err := run(t, srv, "subgraph-health", "--wait", "--max-wait", "50ms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not synced after 50ms")
	assert.Contains(t, out, `"synced": false`)
}

func TestSubgraphHealth_WaitStopsOnClientError(t *testing.T) {
	t.Setenv("ESTFORCTL_HEALTH_INITIAL_INTERVAL", "1ms")
	t.Setenv("ESTFORCTL_HEALTH_MAX_INTERVAL", "5ms")

	srv := apitest.New(t)
	srv.FailPath("/subgraph-health/", http.StatusForbidden)
	_, err := run(t, srv, "subgraph-health", "--wait", "--max-wait", "5s")
	require.Error(t, err)
	code, ok := client.StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Len(t, srv.Requests(), 1)
}

func TestSubgraphHealth_WaitRejectsZeroMaxWait(t *testing.T) {
	srv := apitest.New(t)
	_, err := run(t, srv, "subgraph-health", "--wait", "--max-wait", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
	assert.Empty(t, srv.Requests())
}

func TestSummary(t *testing.T) {
	srv := apitest.New(t)
	out, err := run(t, srv, "summary")
	require.NoError(t, err)

	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.NotNil(t, s.CoreData)
	assert.EqualValues(t, 2, s.CoreData.TotalPlayers)
	require.NotNil(t, s.SubgraphHealth)
	assert.True(t, s.SubgraphHealth.Synced)
	assert.Len(t, s.FirstToReachMaxSkills, 1)

	paths := map[string]bool{}
	for _, r := range srv.Requests() {
		paths[r.RequestURI] = true
	}
	assert.Equal(t, map[string]bool{"/core-data/": true, "/subgraph-health/": true, "/first-to-reach-max-skills/": true}, paths)
}

func TestSummary_FailsWhenAnyPartFails(t *testing.T) {
	srv := apitest.New(t)
	srv.FailPath("/core-data/", http.StatusBadGateway)
	_, err := run(t, srv, "summary")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "core data"))
}

func TestInvalidConfigFlag(t *testing.T) {
	srv := apitest.New(t)
	_, err := run(t, srv, "--base-url", "not a url", "get", "players")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
