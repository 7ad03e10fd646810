// Package dsa implements data structures supporting the stream engine.
//
// ShardRing maps client ids onto a fixed set of shard workers via
// consistent hashing. Any stable client→shard function satisfies the
// processing contract (per-client order); consistent hashing keeps the
// assignment balanced and independent of the client id distribution.
package dsa

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/payline-systems/payline/internal/domain"
)

// defaultVirtualNodes keeps the standard deviation of shard load at
// roughly 5–10% of the mean.
const defaultVirtualNodes = 150

// ShardRing assigns client ids to shards. The shard set is fixed at
// construction, so lookups need no locking.
type ShardRing struct {
	ring []ringPoint // sorted by hash
}

// ringPoint is a single virtual position on the ring.
type ringPoint struct {
	hash  uint32
	shard int
}

// NewShardRing builds a ring over shards 0..n-1. virtualNodes <= 0 selects
// the default replica count.
func NewShardRing(n, virtualNodes int) *ShardRing {
	if virtualNodes <= 0 {
		virtualNodes = defaultVirtualNodes
	}
	r := &ShardRing{ring: make([]ringPoint, 0, n*virtualNodes)}
	for shard := 0; shard < n; shard++ {
		for i := 0; i < virtualNodes; i++ {
			r.ring = append(r.ring, ringPoint{
				hash:  hashKey(fmt.Sprintf("shard-%d#%d", shard, i)),
				shard: shard,
			})
		}
	}
	sort.Slice(r.ring, func(i, j int) bool { return r.ring[i].hash < r.ring[j].hash })
	return r
}

// Shard returns the shard responsible for the client. The same client
// always lands on the same shard — that is what preserves per-client
// arrival order across parallel workers.
func (r *ShardRing) Shard(client domain.ClientID) int {
	if len(r.ring) == 0 {
		return 0
	}
	hash := hashKey(fmt.Sprintf("client-%d", client))
	idx := sort.Search(len(r.ring), func(i int) bool {
		return r.ring[i].hash >= hash
	})
	if idx >= len(r.ring) {
		idx = 0
	}
	return r.ring[idx].shard
}

// hashKey produces a 32-bit hash of a key using SHA-256 truncation.
func hashKey(key string) uint32 {
	h := sha256.Sum256([]byte(key))
	return binary.BigEndian.Uint32(h[:4])
}
