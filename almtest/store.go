package almtest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/almoner/store/bolt"
)

// CommitKVStore returns a durable commit store backed by a throwaway
// database file, together with a cleanup function that must be called
// when the test finishes.
func CommitKVStore(t testing.TB) (*bolt.CommitStore, func()) {
	t.Helper()

	dir, err := ioutil.TempDir("", "almoner-store")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	db, err := bolt.NewCommitStore(dir, "test")
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("cannot create a commit store: %s", err)
	}
	cleanup := func() {
		db.Close()
		os.RemoveAll(dir)
	}
	return db, cleanup
}
