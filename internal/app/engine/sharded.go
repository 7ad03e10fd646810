package engine

import (
	"fmt"
	"sync"

	"github.com/payline-systems/payline/internal/domain"
	"github.com/payline-systems/payline/internal/infra/dsa"
)

// ShardedProcessor processes a stream across parallel shard workers.
//
// Records are routed by client id over a consistent hash ring, so every
// record of a given client lands on the same shard and is applied in
// arrival order. Shards never share accounts, which is the only
// serialization the engine requires; cross-shard ordering is free to
// interleave.
//
// On the first fatal error the processor stops accepting records and
// drains the remainder of its queues without applying them.
type ShardedProcessor struct {
	ring   *dsa.ShardRing
	shards []*shard

	mu       sync.Mutex
	fatalErr error
	closed   bool
}

// shard is one worker: a registry fed by a single goroutine, preserving
// the order its records were submitted in.
type shard struct {
	registry *Registry
	records  chan domain.Record
	done     chan struct{}
	err      error
}

// shardQueueDepth bounds how far a worker may lag behind ingestion.
const shardQueueDepth = 256

// NewShardedProcessor starts n shard workers. n must be at least 1.
func NewShardedProcessor(n int) *ShardedProcessor {
	if n < 1 {
		n = 1
	}
	p := &ShardedProcessor{
		ring:   dsa.NewShardRing(n, 0),
		shards: make([]*shard, n),
	}
	for i := range p.shards {
		s := &shard{
			registry: NewRegistry(),
			records:  make(chan domain.Record, shardQueueDepth),
			done:     make(chan struct{}),
		}
		p.shards[i] = s
		go s.run(p)
	}
	return p
}

// run drains the shard's queue. After a fatal error — on this shard or
// any other — remaining records are discarded so Close never blocks.
func (s *shard) run(p *ShardedProcessor) {
	defer close(s.done)
	for rec := range s.records {
		if s.err != nil || p.failed() {
			continue
		}
		if err := s.registry.Process(rec); err != nil {
			s.err = err
			p.recordFatal(err)
		}
	}
}

// Process routes one record to its shard. It returns a fatal error as
// soon as any worker has reported one; the error is sticky.
func (p *ShardedProcessor) Process(rec domain.Record) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return fmt.Errorf("sharded processor is closed")
	}
	if p.fatalErr != nil {
		err := p.fatalErr
		p.mu.Unlock()
		return err
	}
	p.mu.Unlock()

	p.shards[p.ring.Shard(rec.Client)].records <- rec
	return nil
}

// Close stops the workers, waits for their queues to drain, and returns
// the first fatal error observed anywhere.
func (p *ShardedProcessor) Close() error {
	p.mu.Lock()
	if p.closed {
		err := p.fatalErr
		p.mu.Unlock()
		return err
	}
	p.closed = true
	p.mu.Unlock()

	for _, s := range p.shards {
		close(s.records)
	}
	for _, s := range p.shards {
		<-s.done
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fatalErr
}

// Summaries merges the per-shard reports, sorted by client id. Call after
// Close; shard registries are only safe to read once their workers have
// stopped.
func (p *ShardedProcessor) Summaries() []domain.AccountSummary {
	var out []domain.AccountSummary
	for _, s := range p.shards {
		out = append(out, s.registry.Summaries()...)
	}
	sortSummaries(out)
	return out
}

func (p *ShardedProcessor) recordFatal(err error) {
	p.mu.Lock()
	if p.fatalErr == nil {
		p.fatalErr = err
	}
	p.mu.Unlock()
}

func (p *ShardedProcessor) failed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fatalErr != nil
}
