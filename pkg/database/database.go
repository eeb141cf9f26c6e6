package database

import (
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vidstream-backend/pkg/config"
)

// Pool owns the process-wide GORM handle, dialed lazily on first acquisition.
// Callers that race on the first Acquire await a single in-flight dial
// attempt instead of opening duplicate connections. A failed attempt is not
// cached: the next Acquire dials again.
type Pool struct {
	mu       sync.Mutex
	conn     *gorm.DB
	inflight *attempt
	dsn      string
	open     func(dsn string) (*gorm.DB, error)
}

type attempt struct {
	done chan struct{}
	conn *gorm.DB
	err  error
}

func NewPool(cfg *config.Config) *Pool {
	return &Pool{dsn: cfg.DatabaseURL, open: openPostgres}
}

func (p *Pool) Acquire() (*gorm.DB, error) {
	p.mu.Lock()
	if p.conn != nil {
		conn := p.conn
		p.mu.Unlock()
		return conn, nil
	}

	if a := p.inflight; a != nil {
		p.mu.Unlock()
		<-a.done
		return a.conn, a.err
	}

	a := &attempt{done: make(chan struct{})}
	p.inflight = a
	p.mu.Unlock()

	a.conn, a.err = p.open(p.dsn)
	close(a.done)

	p.mu.Lock()
	p.inflight = nil
	if a.err == nil {
		p.conn = a.conn
	}
	p.mu.Unlock()

	return a.conn, a.err
}

func openPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
}
