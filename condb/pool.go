package condb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Role selects which endpoint a statement runs against.
type Role string

const (
	// Primary is the write endpoint.
	Primary Role = "primary"
	// Replica is the read-only endpoint.
	Replica Role = "replica"
)

// Pools owns one bounded connection pool per role. Handlers never see a raw
// connection; every statement goes through RunQuery.
type Pools struct {
	primary *pgxpool.Pool
	replica *pgxpool.Pool

	acquireTimeout time.Duration
	closeTimeout   time.Duration
	closeOnce      sync.Once
}

// Open establishes both pools. Each pool dials its endpoint up front, so an
// unreachable database fails here instead of on the first request.
func Open(ctx context.Context, cfg Config) (*Pools, error) {
	primary, err := connect(ctx, cfg.Primary, cfg)
	if err != nil {
		return nil, fmt.Errorf("primary pool: %w", err)
	}
	replica, err := connect(ctx, cfg.Replica, cfg)
	if err != nil {
		primary.Close()
		return nil, fmt.Errorf("replica pool: %w", err)
	}
	return &Pools{
		primary:        primary,
		replica:        replica,
		acquireTimeout: cfg.AcquireTimeout,
		closeTimeout:   cfg.CloseTimeout,
	}, nil
}

func connect(ctx context.Context, ep Endpoint, cfg Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(ep.DSN())
	if err != nil {
		return nil, err
	}
	if cfg.MinConns > 0 {
		pc.MinConns = cfg.MinConns
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	return pgxpool.ConnectConfig(ctx, pc)
}

func (p *Pools) pool(role Role) (*pgxpool.Pool, error) {
	switch role {
	case Primary:
		return p.primary, nil
	case Replica:
		return p.replica, nil
	}
	return nil, fmt.Errorf("unknown pool role %q", role)
}

// Close drains both pools. It waits up to the configured close timeout for
// checked-out connections to come back, then stops waiting and leaves the
// remainder to process teardown. Safe to call more than once.
func (p *Pools) Close() {
	p.closeOnce.Do(func() {
		done := make(chan struct{})
		go func() {
			p.primary.Close()
			p.replica.Close()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(p.closeTimeout):
		}
	})
}
