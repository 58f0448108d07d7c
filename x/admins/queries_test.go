package admins

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/store"
)

func TestGreetQuery(t *testing.T) {
	qr := almoner.NewQueryRouter()
	RegisterQuery(qr)

	db := store.MemStore()
	models, err := qr.Handler("/admins/greet").Query(db, "", nil)
	if err != nil {
		t.Fatalf("cannot query: %+v", err)
	}
	if len(models) != 1 {
		t.Fatalf("want a single model, got %d", len(models))
	}
	var resp GreetResponse
	if err := json.Unmarshal(models[0].Value, &resp); err != nil {
		t.Fatalf("cannot parse response: %s", err)
	}
	if resp.Message != "Hello World" {
		t.Fatalf("unexpected greeting: %q", resp.Message)
	}
}

func TestRosterQuery(t *testing.T) {
	cases := map[string]struct {
		genesis    []string
		wantAdmins []almoner.Address
	}{
		"configured admins are returned in seat order": {
			genesis:    []string{"admin1", "admin2"},
			wantAdmins: rosterOf("admin1", "admin2"),
		},
		"duplicate seats are preserved": {
			genesis:    []string{"admin1", "admin2", "admin1"},
			wantAdmins: rosterOf("admin1", "admin2", "admin1"),
		},
		"empty roster is an empty list": {
			genesis:    []string{},
			wantAdmins: rosterOf(),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			initStore(t, db, tc.genesis, "eth")

			qr := almoner.NewQueryRouter()
			RegisterQuery(qr)

			models, err := qr.Handler("/admins/roster").Query(db, "", nil)
			if err != nil {
				t.Fatalf("cannot query: %+v", err)
			}
			if len(models) != 1 {
				t.Fatalf("want a single model, got %d", len(models))
			}
			var resp RosterResponse
			if err := json.Unmarshal(models[0].Value, &resp); err != nil {
				t.Fatalf("cannot parse response: %s", err)
			}
			assertRoster(t, tc.wantAdmins, resp.Admins)
		})
	}
}
