package backend

import (
	"path"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/thetatoken/checkpoints/common/util"
	"github.com/thetatoken/checkpoints/store/database"
)

var logger *log.Entry = util.GetLoggerForModule("store")

const (
	BackendLevelDB = "leveldb"
	BackendBadger  = "badger"
	BackendMemory  = "memory"
)

// ErrUnknownBackend is returned for an unsupported storage backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// NewDatabase opens the database of the given backend under dir.
func NewDatabase(backend string, dir string, cache int) (database.Database, error) {
	switch backend {
	case BackendLevelDB, "":
		return NewLDBDatabase(path.Join(dir, "leveldb"), cache, 0)
	case BackendBadger:
		return NewBadgerDatabase(path.Join(dir, "badger"))
	case BackendMemory:
		return NewMemDatabase(), nil
	default:
		return nil, errors.Wrap(ErrUnknownBackend, backend)
	}
}
