package db

import (
	"fmt"
	"sync/atomic"

	"github.com/flusio/soutenir/internal/config"
	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("db", fx.Provide(New))

func New(cfg config.Config) (*gorm.DB, error) {
	dialect, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialect, &gorm.Config{})
}

var testDBCounter int64

// NewTest opens an isolated in-memory sqlite database for tests.
func NewTest() (*gorm.DB, error) {
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}
