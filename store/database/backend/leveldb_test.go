package backend

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thetatoken/checkpoints/store"
	"github.com/thetatoken/checkpoints/store/database"
)

func newTestDir(prefix string) (string, func()) {
	dirname, err := ioutil.TempDir(os.TempDir(), prefix)
	if err != nil {
		panic("failed to create test file: " + err.Error())
	}
	return dirname, func() { os.RemoveAll(dirname) }
}

func newTestLDB() (*LDBDatabase, func()) {
	dirname, remove := newTestDir("ldb_test_")
	db, err := NewLDBDatabase(dirname, 0, 0)
	if err != nil {
		panic("failed to create test database: " + err.Error())
	}
	return db, func() {
		db.Close()
		remove()
	}
}

func newTestBadger() (*BadgerDatabase, func()) {
	dirname, remove := newTestDir("badger_test_")
	db, err := NewBadgerDatabase(dirname)
	if err != nil {
		panic("failed to create test database: " + err.Error())
	}
	return db, func() {
		db.Close()
		remove()
	}
}

var testValues = []string{"a", "1251", "\x00123\x00"}

func TestLDB_PutGet(t *testing.T) {
	db, remove := newTestLDB()
	defer remove()
	testPutGet(db, t)
}

func TestBadger_PutGet(t *testing.T) {
	db, remove := newTestBadger()
	defer remove()
	testPutGet(db, t)
}

func TestMemoryDB_PutGet(t *testing.T) {
	testPutGet(NewMemDatabase(), t)
}

func TestLDB_Batch(t *testing.T) {
	db, remove := newTestLDB()
	defer remove()
	testBatch(db, t)
}

func TestBadger_Batch(t *testing.T) {
	db, remove := newTestBadger()
	defer remove()
	testBatch(db, t)
}

func TestMemoryDB_Batch(t *testing.T) {
	testBatch(NewMemDatabase(), t)
}

func testPutGet(db database.Database, t *testing.T) {
	for _, v := range testValues {
		if err := db.Put([]byte(v), []byte(v)); err != nil {
			t.Fatalf("put failed: %v", err)
		}
	}

	for _, v := range testValues {
		data, err := db.Get([]byte(v))
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !bytes.Equal(data, []byte(v)) {
			t.Fatalf("get returned wrong result, got %q expected %q", string(data), v)
		}
		exists, err := db.Has([]byte(v))
		if err != nil || !exists {
			t.Fatalf("has failed: %v", err)
		}
	}

	_, err := db.Get([]byte("non-exist-key"))
	if err != store.ErrKeyNotFound {
		t.Fatalf("expect to return a not found error, got %v", err)
	}

	exists, err := db.Has([]byte("non-exist-key"))
	if err != nil {
		t.Fatalf("has failed: %v", err)
	}
	if exists {
		t.Fatalf("expect to return not found")
	}

	for _, v := range testValues {
		if err := db.Delete([]byte(v)); err != nil {
			t.Fatalf("delete %q failed: %v", v, err)
		}
	}

	for _, v := range testValues {
		if _, err := db.Get([]byte(v)); err == nil {
			t.Fatalf("got deleted value %q", v)
		}
	}
}

func testBatch(db database.Database, t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	require.Nil(db.Put([]byte("stale"), []byte("x")))

	batch := db.NewBatch()
	for _, v := range testValues {
		require.Nil(batch.Put([]byte(v), []byte(v)))
	}
	require.Nil(batch.Delete([]byte("stale")))
	assert.True(batch.ValueSize() > 0)

	// Nothing is visible before Write.
	_, err := db.Get([]byte("a"))
	assert.Equal(store.ErrKeyNotFound, err)

	require.Nil(batch.Write())
	assert.Equal(0, batch.ValueSize())

	for _, v := range testValues {
		data, err := db.Get([]byte(v))
		require.Nil(err)
		assert.Equal([]byte(v), data)
	}
	_, err = db.Get([]byte("stale"))
	assert.Equal(store.ErrKeyNotFound, err)
}

func TestNewDatabase(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir, remove := newTestDir("factory_test_")
	defer remove()

	db, err := NewDatabase(BackendMemory, dir, 0)
	require.Nil(err)
	_, ok := db.(*MemDatabase)
	assert.True(ok)

	db, err = NewDatabase(BackendLevelDB, dir, 0)
	require.Nil(err)
	_, ok = db.(*LDBDatabase)
	assert.True(ok)
	db.Close()

	_, err = NewDatabase("rocksdb", dir, 0)
	assert.Equal(ErrUnknownBackend, errors.Cause(err))
}
