package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/0xJijimi/estfor-api/client/internal/types"
)

func TestGetActions_FilterOrder(t *testing.T) {
	t.Parallel()
	srv, seen := serveJSON(t, http.StatusOK, `{"items":[{"id":"1","actionId":1}],"total":1}`)
	page, err := GetActions(context.Background(), srv.Client(), srv.URL, &types.ActionsFilter{
		IsAvailable:    types.Bool(true),
		NumToFetch:     types.Int(100),
		OrderDirection: types.String("asc"),
	})
	if err != nil {
		t.Fatalf("GetActions error: %v", err)
	}
	if want := "/actions/?orderDirection=asc&numToFetch=100&isAvailable=true"; seen().requestURI != want {
		t.Fatalf("target = %s, want %s", seen().requestURI, want)
	}
	if page.Total != 1 || len(page.Items) != 1 || page.Items[0].ID != "1" {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestGetActivities_RepeatedKeys(t *testing.T) {
	t.Parallel()
	srv, seen := serveJSON(t, http.StatusOK, `{"items":[],"total":0}`)
	_, err := GetActivities(context.Background(), srv.Client(), srv.URL, &types.ActivitiesFilter{
		ActivityTypesToSkip: []string{"A", "B"},
		PlayerID:            types.String("3"),
		Simplified:          types.Bool(false),
	})
	if err != nil {
		t.Fatalf("GetActivities error: %v", err)
	}
	want := "/activities/?activityTypesToSkip=A&activityTypesToSkip=B&playerId=3&simplified=false"
	if seen().requestURI != want {
		t.Fatalf("target = %s, want %s", seen().requestURI, want)
	}
}

func TestGetActivitiesByUser_EmptySequenceOmitted(t *testing.T) {
	t.Parallel()
	srv, seen := serveJSON(t, http.StatusOK, `{"items":[],"total":0}`)
	_, err := GetActivitiesByUser(context.Background(), srv.Client(), srv.URL, "0xabc", &types.UserActivitiesFilter{
		ActivityTypesToInclude: []string{},
		NumToSkip:              types.Int(0),
	})
	if err != nil {
		t.Fatalf("GetActivitiesByUser error: %v", err)
	}
	if want := "/activities/0xabc?numToSkip=0"; seen().requestURI != want {
		t.Fatalf("target = %s, want %s", seen().requestURI, want)
	}
}

func TestGetItems_RangeKeys(t *testing.T) {
	t.Parallel()
	srv, seen := serveJSON(t, http.StatusOK, `{"items":[],"total":0}`)
	_, err := GetItems(context.Background(), srv.Client(), srv.URL, &types.ItemsFilter{
		TokenIDsGE: types.String("10"),
		TokenIDsLE: types.String("20"),
	})
	if err != nil {
		t.Fatalf("GetItems error: %v", err)
	}
	if want := "/items/?tokenIds_ge=10&tokenIds_le=20"; seen().requestURI != want {
		t.Fatalf("target = %s, want %s", seen().requestURI, want)
	}
}

func TestGetClanMembers_ClanKeyAfterPagination(t *testing.T) {
	t.Parallel()
	srv, seen := serveJSON(t, http.StatusOK, `{"items":[],"total":0}`)
	_, err := GetClanMembers(context.Background(), srv.Client(), srv.URL, &types.ClanFilter{
		Pagination: types.Pagination{NumToFetch: types.Int(50)},
		ClanID:     types.String("4"),
	})
	if err != nil {
		t.Fatalf("GetClanMembers error: %v", err)
	}
	if want := "/clan-members/?numToFetch=50&clanId=4"; seen().requestURI != want {
		t.Fatalf("target = %s, want %s", seen().requestURI, want)
	}
}

func TestGetClansWithinVaultMMRAttackingRange_BareArray(t *testing.T) {
	t.Parallel()
	srv, _ := serveJSON(t, http.StatusOK, `[{"id":"1","name":"a"},{"id":"2","name":"b"}]`)
	clans, err := GetClansWithinVaultMMRAttackingRange(context.Background(), srv.Client(), srv.URL, "9")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if len(clans) != 2 || clans[1].ID != "2" {
		t.Fatalf("unexpected clans %+v", clans)
	}
}

func TestGetLastFullEquipments_EscapesEachSegment(t *testing.T) {
	t.Parallel()
	srv, seen := serveJSON(t, http.StatusOK, `{"id":"x","tokenIds":[1,2],"amounts":[1,1]}`)
	eq, err := GetLastFullEquipments(context.Background(), srv.Client(), srv.URL, "0xa/b", "1", "wood cutting")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if want := "/last-full-equipments/0xa%2Fb/1/wood%20cutting"; seen().requestURI != want {
		t.Fatalf("target = %s, want %s", seen().requestURI, want)
	}
	if len(eq.TokenIDs) != 2 {
		t.Fatalf("unexpected equipment %+v", eq)
	}
}

func TestGetUserItemNFTsMulti_Body(t *testing.T) {
	t.Parallel()
	srv, seen := serveJSON(t, http.StatusOK, `[]`)
	out, err := GetUserItemNFTsMulti(context.Background(), srv.Client(), srv.URL, []string{"0xa", "0xb"})
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if string(seen().body) != `{"userAddresses":["0xa","0xb"]}` {
		t.Fatalf("body = %s", seen().body)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestGetQueuedActionsMulti_Body(t *testing.T) {
	t.Parallel()
	srv, seen := serveJSON(t, http.StatusOK, `[]`)
	if _, err := GetQueuedActionsMulti(context.Background(), srv.Client(), srv.URL, []string{"7"}); err != nil {
		t.Fatalf("error: %v", err)
	}
	if string(seen().body) != `{"queuedActionIds":["7"]}` {
		t.Fatalf("body = %s", seen().body)
	}
}

func TestGetSubgraphHealth_Decodes(t *testing.T) {
	t.Parallel()
	srv, _ := serveJSON(t, http.StatusOK, `{"id":"h","chains":[{"chainHeadBlock":10,"latestBlock":9}]}`)
	h, err := GetSubgraphHealth(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if h.ID != "h" {
		t.Fatalf("unexpected health %+v", h)
	}
}
