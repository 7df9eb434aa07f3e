package ipfs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/logger"
)

// DefaultMaxConcurrentPins bounds parallel pin requests against the node
// when the config leaves it unset.
const DefaultMaxConcurrentPins = 4

// Shell is the subset of the go-ipfs-api shell the client uses
//
//go:generate mockgen -source=client.go -destination=../mocks/ipfs.go -package=mocks -mock_names=Shell=MockIPFSShell,Client=MockIPFSClient
type Shell interface {
	Add(r io.Reader, options ...ipfsapi.AddOpts) (string, error)
	Cat(path string) (io.ReadCloser, error)
	ID(peer ...string) (*ipfsapi.IdOutput, error)
}

// Client pins marketplace content to the configured IPFS node. Pins run
// through a bounded worker pool so a burst of mints cannot overwhelm the
// node's API, and each pin retries transient failures with backoff.
type Client interface {
	// PinJSON marshals v, pins it, and returns the CID.
	PinJSON(ctx context.Context, v interface{}) (string, error)
	// PinFile pins raw content bytes and returns the CID.
	PinFile(ctx context.Context, data []byte) (string, error)
	// NodeID returns the peer ID of the pinning node, proving reachability.
	NodeID(ctx context.Context) (string, error)
	// Close stops the worker pool, waiting for in-flight pins.
	Close()
}

// Config holds IPFS client configuration
type Config struct {
	NodeURL           string
	PinTimeout        time.Duration
	MaxConcurrentPins int
}

type client struct {
	shell      Shell
	json       adapter.JSON
	pool       pond.ResultPool[string]
	pinTimeout time.Duration
}

// NewClient connects to the IPFS node API at cfg.NodeURL.
func NewClient(cfg Config, json adapter.JSON) Client {
	sh := ipfsapi.NewShell(cfg.NodeURL)
	if cfg.PinTimeout > 0 {
		sh.SetTimeout(cfg.PinTimeout)
	}
	return NewClientWithShell(sh, cfg, json)
}

// NewClientWithShell wires an existing shell, used by tests.
func NewClientWithShell(sh Shell, cfg Config, json adapter.JSON) Client {
	maxConcurrent := cfg.MaxConcurrentPins
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentPins
	}

	return &client{
		shell:      sh,
		json:       json,
		pool:       pond.NewResultPool[string](maxConcurrent),
		pinTimeout: cfg.PinTimeout,
	}
}

func (c *client) PinJSON(ctx context.Context, v interface{}) (string, error) {
	data, err := c.json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal content: %w", err)
	}
	return c.pin(ctx, data)
}

func (c *client) PinFile(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("nothing to pin: empty content")
	}
	return c.pin(ctx, data)
}

// pin submits an Add to the worker pool and retries transient node failures
// with exponential backoff. Content is held as bytes so every attempt reads
// from the start.
func (c *client) pin(ctx context.Context, data []byte) (string, error) {
	task := c.pool.SubmitErr(func() (string, error) {
		return c.addWithRetry(ctx, data)
	})

	cid, err := task.Wait()
	if err != nil {
		logger.WarnCtx(ctx, "IPFS pin failed", zap.Error(err), zap.Int("size", len(data)))
		return "", fmt.Errorf("failed to pin content: %w", err)
	}

	logger.InfoCtx(ctx, "Pinned content to IPFS", zap.String("cid", cid), zap.Int("size", len(data)))
	return cid, nil
}

func (c *client) addWithRetry(ctx context.Context, data []byte) (string, error) {
	var cid string

	operation := func() error {
		result, err := c.shell.Add(bytes.NewReader(data), ipfsapi.Pin(true))
		if err != nil {
			return fmt.Errorf("failed to add content: %w", err)
		}
		cid = result
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = 1 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return "", err
	}

	return cid, nil
}

func (c *client) NodeID(ctx context.Context) (string, error) {
	type idResult struct {
		id  string
		err error
	}

	resultChan := make(chan idResult, 1)
	go func() {
		out, err := c.shell.ID()
		if err != nil {
			resultChan <- idResult{err: fmt.Errorf("failed to query node identity: %w", err)}
			return
		}
		resultChan <- idResult{id: out.ID}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-resultChan:
		return result.id, result.err
	}
}

func (c *client) Close() {
	c.pool.StopAndWait()
}
