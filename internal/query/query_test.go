package query

import (
	"net/url"
	"strings"
	"testing"

	"github.com/0xJijimi/estfor-api/client/internal/types"
)

func TestEncode_NilAndEmpty(t *testing.T) {
	t.Parallel()
	var nilFilter *types.ItemsFilter
	cases := []any{nil, nilFilter, types.ItemsFilter{}, &types.ActivitiesFilter{}}
	for _, f := range cases {
		got, err := Encode(f)
		if err != nil {
			t.Fatalf("Encode(%T): %v", f, err)
		}
		if got != "" {
			t.Fatalf("Encode(%T) = %q, want empty", f, got)
		}
	}
}

func TestEncode_ScalarsAndSequences(t *testing.T) {
	t.Parallel()
	f := &types.ItemsFilter{
		IsAvailable: types.Bool(true),
		TokenIDs:    []string{"1", "2"},
	}
	got, err := Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got != "tokenIds=1&tokenIds=2&isAvailable=true" {
		t.Fatalf("unexpected query: %q", got)
	}
	if !strings.Contains(got, "tokenIds=1&tokenIds=2") {
		t.Fatalf("sequence pairs not adjacent and ordered: %q", got)
	}
}

func TestEncode_DeclarationOrderWithEmbeddedPagination(t *testing.T) {
	t.Parallel()
	f := types.PlayerFirstFilter{
		PlayerID:   types.String("7"),
		Pagination: types.Pagination{NumToSkip: types.Int(10), NumToFetch: types.Int(5), OrderDirection: types.String("desc")},
	}
	got, err := Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "playerId=7&numToSkip=10&numToFetch=5&orderDirection=desc"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncode_EmptyStringIsPresent(t *testing.T) {
	t.Parallel()
	got, err := Encode(types.PlayersFilter{UserAddress: types.String("")})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got != "userAddress=" {
		t.Fatalf("empty string must be kept, got %q", got)
	}
}

func TestEncode_PercentEncodesKeysAndValues(t *testing.T) {
	t.Parallel()
	f := struct {
		Weird *string `url:"a key&"`
	}{Weird: types.String("x y/z=1&b")}
	got, err := Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got != "a%20key%26=x%20y%2Fz%3D1%26b" {
		t.Fatalf("unexpected encoding: %q", got)
	}
	vals, err := url.ParseQuery(got)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if vals.Get("a key&") != "x y/z=1&b" {
		t.Fatalf("round trip failed: %v", vals)
	}
}

func TestEncode_RejectsNonStruct(t *testing.T) {
	t.Parallel()
	if _, err := Encode(map[string]string{"a": "b"}); err == nil {
		t.Fatal("expected error for map filter")
	}
}

func TestTarget(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		resource string
		filter   any
		segments []string
		want     string
	}{
		{"list no filter", "actions", nil, nil, "http://h/actions/"},
		{"list empty filter", "clans", &types.Pagination{}, nil, "http://h/clans/"},
		{"list with filter", "players", &types.PlayersFilter{IsActive: types.Bool(false)}, nil, "http://h/players/?isActive=false"},
		{"by id", "players", nil, []string{"42"}, "http://h/players/42"},
		{"escaped address", "users", nil, []string{"0xab/cd ef"}, "http://h/users/0xab%2Fcd%20ef"},
		{"segment and filter", "order-book-day-datas", &types.Pagination{NumToFetch: types.Int(3)}, []string{"11"}, "http://h/order-book-day-datas/11?numToFetch=3"},
		{"multi segment", "last-full-equipments", nil, []string{"0xa", "1", "wood cutting"}, "http://h/last-full-equipments/0xa/1/wood%20cutting"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Target("http://h", tt.resource, tt.filter, tt.segments...)
			if err != nil {
				t.Fatalf("Target: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTarget_SegmentRoundTrip(t *testing.T) {
	t.Parallel()
	raw := "a/b c?d#e%f"
	target, err := Target("http://h", "users", nil, raw)
	if err != nil {
		t.Fatalf("Target: %v", err)
	}
	u, err := url.Parse(target)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("segment leaked into query/fragment: %+v", u)
	}
	if u.Path != "/users/"+raw {
		t.Fatalf("decoded path %q does not round trip", u.Path)
	}
}

func TestTarget_RejectsEmptySegment(t *testing.T) {
	t.Parallel()
	for _, segs := range [][]string{{""}, {"0xa", "", "WOODCUTTING"}} {
		if got, err := Target("http://h", "players", nil, segs...); err == nil {
			t.Fatalf("expected error for %q, got %q", segs, got)
		}
	}
}
