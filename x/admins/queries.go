package admins

import (
	"encoding/json"

	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/errors"
)

// Greeting is the static reply of the greet query.
const Greeting = "Hello World"

// GreetResponse is the JSON reply of the greet query.
type GreetResponse struct {
	Message string `json:"message"`
}

// RosterResponse is the JSON reply of the roster query. Addresses are
// hex encoded, in seat order, duplicates included.
type RosterResponse struct {
	Admins []almoner.Address `json:"admins"`
}

// RegisterQuery registers the greet and roster endpoints.
func RegisterQuery(qr almoner.QueryRouter) {
	qr.Register("/admins/greet", greetQuery{})
	qr.Register("/admins/roster", rosterQuery{})
}

type greetQuery struct{}

var _ almoner.QueryHandler = greetQuery{}

func (greetQuery) Query(db almoner.ReadOnlyKVStore, mod string, data []byte) ([]almoner.Model, error) {
	raw, err := json.Marshal(GreetResponse{Message: Greeting})
	if err != nil {
		return nil, errors.Wrap(err, "cannot serialize greeting")
	}
	return []almoner.Model{almoner.Pair([]byte("greet"), raw)}, nil
}

type rosterQuery struct{}

var _ almoner.QueryHandler = rosterQuery{}

func (rosterQuery) Query(db almoner.ReadOnlyKVStore, mod string, data []byte) ([]almoner.Model, error) {
	roster, err := loadRoster(db)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(RosterResponse{Admins: roster})
	if err != nil {
		return nil, errors.Wrap(err, "cannot serialize roster")
	}
	return []almoner.Model{almoner.Pair(rosterKey, raw)}, nil
}
