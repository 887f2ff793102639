package docker

import (
	"context"
	"errors"

	IDClient "github.com/docker/docker/client"
	"github.com/simplecontainer/deployer/pkg/engine"
)

var ERROR_POOL_CLOSED = errors.New("connection pool is closed")

func NewPool(connect func() (*IDClient.Client, error)) *Pool {
	return &Pool{
		clients: make(map[string]*IDClient.Client),
		connect: connect,
	}
}

// Obtain returns the client bound to the token carried by ctx, creating it
// on first use.
func (pool *Pool) Obtain(ctx context.Context) (*IDClient.Client, error) {
	token := engine.Token(ctx)

	pool.lock.Lock()
	defer pool.lock.Unlock()

	if pool.closed {
		return nil, ERROR_POOL_CLOSED
	}

	if cli, ok := pool.clients[token]; ok {
		return cli, nil
	}

	cli, err := pool.connect()

	if err != nil {
		return nil, err
	}

	pool.clients[token] = cli

	return cli, nil
}

func (pool *Pool) Size() int {
	pool.lock.Lock()
	defer pool.lock.Unlock()

	return len(pool.clients)
}

// Close closes every pooled client. The pool can not be used afterwards.
func (pool *Pool) Close() error {
	pool.lock.Lock()
	defer pool.lock.Unlock()

	var errs []error

	for token, cli := range pool.clients {
		if err := cli.Close(); err != nil {
			errs = append(errs, err)
		}

		delete(pool.clients, token)
	}

	pool.closed = true

	return errors.Join(errs...)
}
