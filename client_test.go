package client

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xJijimi/estfor-api/client/internal/apitest"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(t *testing.T, srv *apitest.Server, opts ...Option) *Client {
	t.Helper()
	c, err := New(append([]Option{WithBaseURL(srv.URL)}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Zero(t, c.http.Timeout)
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, err := New(WithBaseURL("http://localhost:3000/"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", c.BaseURL())
}

func TestNew_RejectsBadOptions(t *testing.T) {
	for name, opt := range map[string]Option{
		"empty base url":    WithBaseURL(""),
		"relative base url": WithBaseURL("api.estfor.com"),
		"nil http client":   WithHTTPClient(nil),
		"zero timeout":      WithHTTPTimeout(0),
		"nil registerer":    WithMetrics(nil),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := New(opt)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "client option")
		})
	}
}

func TestWithHTTPClient_DoesNotMutateCaller(t *testing.T) {
	hc := &http.Client{}
	c, err := New(WithHTTPClient(hc), WithHTTPTimeout(3*time.Second), WithDebugLogging(true))
	require.NoError(t, err)
	assert.Zero(t, hc.Timeout)
	assert.Nil(t, hc.Transport)
	assert.Equal(t, 3*time.Second, c.http.Timeout)
}

func TestWithHTTPTimeout_OrderIndependent(t *testing.T) {
	c, err := New(WithHTTPTimeout(2*time.Second), WithHTTPClient(&http.Client{}))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, c.http.Timeout)
}

func TestGetPlayerByID(t *testing.T) {
	srv := apitest.New(t)
	c := newTestClient(t, srv)

	p, err := c.GetPlayerByID(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", p.ID)
	assert.Equal(t, "bob", p.Name)
	assert.Equal(t, "/players/42", srv.Last().RequestURI)
}

func TestGetPlayers_Filtered(t *testing.T) {
	srv := apitest.New(t)
	c := newTestClient(t, srv)

	page, err := c.GetPlayers(context.Background(), &PlayersFilter{
		Pagination:  Pagination{NumToFetch: Int(20)},
		UserAddress: String("0xabc"),
		IsActive:    Bool(true),
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, float64(1), page.Total)
	assert.Equal(t, "alice", page.Items[0].Name)
	assert.Equal(t, "/players/?numToFetch=20&userAddress=0xabc&isActive=true", srv.Last().RequestURI)
}

func TestGetPlayers_NilAndEmptyFilter(t *testing.T) {
	srv := apitest.New(t)
	c := newTestClient(t, srv)

	_, err := c.GetPlayers(context.Background(), nil)
	require.NoError(t, err)
	_, err = c.GetPlayers(context.Background(), &PlayersFilter{})
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	for _, r := range reqs {
		assert.Equal(t, "/players/", r.RequestURI)
	}
}

func TestGetPlayersMulti(t *testing.T) {
	srv := apitest.New(t)
	c := newTestClient(t, srv)

	players, err := c.GetPlayersMulti(context.Background(), []string{"1", "42", "404"})
	require.NoError(t, err)
	require.Len(t, players, 2)

	last := srv.Last()
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/players/multi", last.RequestURI)
	assert.Equal(t, "application/json", last.ContentType)
	assert.JSONEq(t, `{"playerIds":["1","42","404"]}`, string(last.Body))
}

func TestGetPlayerByID_NotFound(t *testing.T) {
	srv := apitest.New(t)
	c := newTestClient(t, srv)

	_, err := c.GetPlayerByID(context.Background(), "999")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "failed to fetch player by id: 404", err.Error())

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "player by id", re.Op)
}

func TestServerError(t *testing.T) {
	srv := apitest.New(t)
	srv.FailPath("/core-data/", http.StatusServiceUnavailable)
	c := newTestClient(t, srv)

	_, err := c.GetCoreData(context.Background())
	require.Error(t, err)
	code, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.True(t, IsServerError(err))
	assert.Contains(t, err.Error(), "core data")
}

func TestGetUserByAddress_EscapesSegment(t *testing.T) {
	srv := apitest.New(t)
	c := newTestClient(t, srv)

	_, err := c.GetUserByAddress(context.Background(), "0x/ab")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "/users/0x%2Fab", srv.Last().RequestURI)
}

func TestGetLastFullEquipments_SegmentsRoundTrip(t *testing.T) {
	srv := apitest.New(t)
	c := newTestClient(t, srv)

	eq, err := c.GetLastFullEquipments(context.Background(), "0xabc", "1", "wood cutting")
	require.NoError(t, err)
	assert.Equal(t, "wood cutting", eq.Skill)
	assert.Equal(t, []int{1, 2}, eq.TokenIDs)
	assert.Equal(t, "/last-full-equipments/0xabc/1/wood%20cutting", srv.Last().RequestURI)
}

func TestGetFirstToReachMaxSkills_BareArray(t *testing.T) {
	srv := apitest.New(t)
	c := newTestClient(t, srv)

	out, err := c.GetFirstToReachMaxSkills(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, float64(100), out[0].Level)
}

func TestListFallsBackToEmptyPage(t *testing.T) {
	srv := apitest.New(t)
	c := newTestClient(t, srv)

	page, err := c.GetClans(context.Background(), &Pagination{OrderBy: String("name")})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, "/clans/?orderBy=name", srv.Last().RequestURI)
}

func TestCanceledContextSendsNothing(t *testing.T) {
	srv := apitest.New(t)
	c := newTestClient(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetPlayers(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, srv.Requests())
}

func TestTransportErrorReturnedAsIs(t *testing.T) {
	boom := errors.New("dial refused")
	hc := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) { return nil, boom })}
	c, err := New(WithBaseURL("http://example.invalid"), WithHTTPClient(hc))
	require.NoError(t, err)

	_, err = c.GetAvatars(context.Background())
	require.ErrorIs(t, err, boom)
	_, isRequestErr := StatusCode(err)
	assert.False(t, isRequestErr)
}

func TestClientsAreIndependent(t *testing.T) {
	a := apitest.New(t)
	b := apitest.New(t)
	ca := newTestClient(t, a)
	cb := newTestClient(t, b)

	_, err := ca.GetCoreData(context.Background())
	require.NoError(t, err)
	_, err = cb.GetSubgraphHealth(context.Background())
	require.NoError(t, err)

	require.Len(t, a.Requests(), 1)
	require.Len(t, b.Requests(), 1)
	assert.Equal(t, "/core-data/", a.Last().RequestURI)
	assert.Equal(t, "/subgraph-health/", b.Last().RequestURI)
}
