package db

import (
	"errors"
	"fmt"
	"math/rand"
	"net/url"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	// the dialects we can open, selected by name in New
	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

const (
	DialectSQLite   = "sqlite3"
	DialectMySQL    = "mysql"
	DialectPostgres = "postgres"
)

var ErrUnknownDialect = errors.New("unknown dialect")

func DefaultOptions() url.Values {
	return url.Values{
		// with this, the db sleeps for a little while when locked. can prevent
		// a SQLITE_BUSY. see https://www.sqlite.org/c3ref/busy_timeout.html
		"_busy_timeout": {"30000"},
		"_journal_mode": {"WAL"},
		// song and song genre rows reference their parents with ON DELETE CASCADE
		"_foreign_keys": {"true"},
	}
}

type DB struct {
	*gorm.DB
	dialect string
}

// New opens a connection to the catalog database. For sqlite3 path is a file
// path and the default options are appended, for the other dialects it is
// passed through as the DSN.
func New(dialect, path string, options url.Values) (*DB, error) {
	var dsn string
	switch dialect {
	case DialectSQLite:
		url := url.URL{Path: path}
		url.RawQuery = options.Encode()
		dsn = url.String()
	case DialectMySQL, DialectPostgres:
		dsn = path
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("with gorm: %w", err)
	}
	return wrap(db, dialect), nil
}

// NewMock opens a private in-memory sqlite database. Each call gets its own
// database so tests can run in parallel.
func NewMock() (*DB, error) {
	options := DefaultOptions()
	options.Del("_journal_mode")
	options.Set("mode", "memory")
	options.Set("cache", "shared")
	dsn := fmt.Sprintf("file:%s?%s", randKey(), options.Encode())
	db, err := gorm.Open(DialectSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("with gorm: %w", err)
	}
	return wrap(db, DialectSQLite), nil
}

func wrap(db *gorm.DB, dialect string) *DB {
	db.SetLogger(gorm.Logger{LogWriter: logrus.WithField("component", "gorm")})
	db.LogMode(logrus.IsLevelEnabled(logrus.DebugLevel))
	if dialect == DialectSQLite {
		// sqlite only allows one writer. a single connection also keeps
		// in-memory databases alive for the life of the pool
		db.DB().SetMaxOpenConns(1)
	}
	return &DB{DB: db, dialect: dialect}
}

func (db *DB) Dialect() string {
	return db.dialect
}

// Stats are the row counts of each table, published on /debug/vars.
type Stats struct {
	Artists, Songs, Genres, SongGenres int
}

func (db *DB) Stats() (Stats, error) {
	var stats Stats
	for _, c := range []struct {
		model interface{}
		dest  *int
	}{
		{Artist{}, &stats.Artists},
		{Song{}, &stats.Songs},
		{Genre{}, &stats.Genres},
		{SongGenre{}, &stats.SongGenres},
	} {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return Stats{}, fmt.Errorf("count: %w", err)
		}
	}
	return stats, nil
}

// withTx runs cb in a transaction, committing if it returns nil and rolling
// back otherwise.
func (db *DB) withTx(cb func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := cb(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func randKey() string {
	letters := []rune("abcdef0123456789")
	b := make([]rune, 16)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
