// Package apitest runs an in-process fake of the Estfor API for tests.
//
// It serves a small fixture world (two players, one user, core data,
// subgraph health, first-to-reach-max records and a last-full-equipment
// entry) and answers every other list resource with an empty page. Every
// request is recorded so tests can assert on the exact wire target.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/0xJijimi/estfor-api/client/internal/types"
)

// Request is one request as the server saw it.
type Request struct {
	Method      string
	RequestURI  string // escaped path plus raw query, exactly as sent
	Path        string // escaped path
	RawQuery    string
	ContentType string
	Header      http.Header
	Body        []byte
}

// Server is a fake Estfor API backed by fixtures.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	requests   []Request
	failures   map[string]int
	healthHits int
	syncAfter  int

	Players []types.Player
	Users   []types.User
}

// New starts a fake API and closes it when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		failures: make(map[string]int),
		Players: []types.Player{
			{Entity: types.Entity{ID: "1"}, UserAddress: "0xabc", Name: "alice", Level: 12, XP: 1500, IsActive: true},
			{Entity: types.Entity{ID: "42"}, UserAddress: "0xdef", Name: "bob", Level: 3, XP: 80},
		},
		Users: []types.User{
			{Entity: types.Entity{ID: "0xabc"}, Address: "0xabc", Name: "alice"},
		},
	}
	s.Server = httptest.NewServer(s.record(s.router()))
	t.Cleanup(s.Close)
	return s
}

// FailPath makes every request whose escaped path equals path answer with status.
func (s *Server) FailPath(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = status
}

// SyncAfter makes subgraph-health report synced only from the n-th call on.
func (s *Server) SyncAfter(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncAfter = n
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request, or a zero Request if none arrived.
func (s *Server) Last() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			RequestURI:  r.RequestURI,
			Path:        r.URL.EscapedPath(),
			RawQuery:    r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Header:      r.Header.Clone(),
			Body:        body,
		})
		status, failing := s.failures[r.URL.EscapedPath()]
		s.mu.Unlock()

		if failing {
			writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
			return
		}
		r.Body = io.NopCloser(strings.NewReader(string(body)))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) router() *mux.Router {
	router := mux.NewRouter()
	router.UseEncodedPath()

	router.HandleFunc("/players/", s.listPlayers).Methods(http.MethodGet)
	router.HandleFunc("/players/multi", s.multiPlayers).Methods(http.MethodPost)
	router.HandleFunc("/players/{id}", s.getPlayer).Methods(http.MethodGet)
	router.HandleFunc("/users/{address}", s.getUser).Methods(http.MethodGet)
	router.HandleFunc("/core-data/", s.coreData).Methods(http.MethodGet)
	router.HandleFunc("/subgraph-health/", s.subgraphHealth).Methods(http.MethodGet)
	router.HandleFunc("/first-to-reach-max-skills/", s.firstToReachMax).Methods(http.MethodGet)
	router.HandleFunc("/last-full-equipments/{userAddress}/{playerId}/{skill}", s.lastFullEquipment).Methods(http.MethodGet)

	// Remaining list resources answer with an empty page, by-id lookups with 404.
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/") {
			writeJSON(w, http.StatusOK, types.Page[types.Entity]{Items: []types.Entity{}})
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})
	return router
}

func (s *Server) listPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var matched []types.Player
	for _, p := range s.Players {
		if addr := q.Get("userAddress"); addr != "" && !strings.EqualFold(addr, p.UserAddress) {
			continue
		}
		if active := q.Get("isActive"); active != "" && active != strconv.FormatBool(p.IsActive) {
			continue
		}
		matched = append(matched, p)
	}
	writeJSON(w, http.StatusOK, paginate(matched, q))
}

func (s *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "id")
	for _, p := range s.Players {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "player not found"})
}

func (s *Server) multiPlayers(w http.ResponseWriter, r *http.Request) {
	var req types.PlayerIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	out := []types.Player{}
	for _, id := range req.PlayerIDs {
		for _, p := range s.Players {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	addr := pathVar(r, "address")
	for _, u := range s.Users {
		if strings.EqualFold(u.Address, addr) {
			writeJSON(w, http.StatusOK, u)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
}

func (s *Server) coreData(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, types.CoreData{
		Entity:       types.Entity{ID: "core"},
		TotalPlayers: float64(len(s.Players)),
		TotalClans:   7,
	})
}

func (s *Server) subgraphHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.healthHits++
	synced := s.healthHits > s.syncAfter
	s.mu.Unlock()

	health := types.SubgraphHealth{
		Entity: types.Entity{ID: "health"},
		Synced: synced,
		Health: "healthy",
		Chains: []types.SubgraphChain{{ChainHeadBlock: 100, LatestBlock: 100, LastHealthyBlock: 100}},
	}
	if !synced {
		health.Chains[0].LatestBlock = 90
	}
	writeJSON(w, http.StatusOK, health)
}

func (s *Server) firstToReachMax(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []types.FirstToReachMaxSkills{
		{Entity: types.Entity{ID: "1"}, UserAddress: "0xabc", PlayerID: "1", Skill: "WOODCUTTING", Level: 100},
	})
}

func (s *Server) lastFullEquipment(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.LastFullEquipment{
		Entity:      types.Entity{ID: "eq"},
		UserAddress: pathVar(r, "userAddress"),
		PlayerID:    pathVar(r, "playerId"),
		Skill:       pathVar(r, "skill"),
		TokenIDs:    []float64{1, 2},
		Amounts:     []float64{1, 1},
	})
}

// pathVar returns the decoded value of a route variable; the router matches
// on the escaped path so '/' inside a segment stays in that segment.
func pathVar(r *http.Request, name string) string {
	raw := mux.Vars(r)[name]
	v, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return v
}

func paginate[T any](items []T, q url.Values) types.Page[T] {
	total := len(items)
	skip, _ := strconv.Atoi(q.Get("numToSkip"))
	if skip > total {
		skip = total
	}
	items = items[skip:]
	if n, err := strconv.Atoi(q.Get("numToFetch")); err == nil && n >= 0 && n < len(items) {
		items = items[:n]
	}
	if items == nil {
		items = []T{}
	}
	return types.Page[T]{Items: items, Total: float64(total)}
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
