package embedding

import (
	"encoding/binary"
	"fmt"
	"math"

	"go.etcd.io/bbolt"

	"wordspace/internal/domain"
)

var bucketVectors = []byte("vectors")

// Cache is a persistent word-to-vector cache wrapped around another
// embedder. Entries are keyed per embedder name, so remote and
// fallback vectors never collide; only cache the remote encoder —
// recomputing the fallback is cheaper than the disk.
type Cache struct {
	db    *bbolt.DB
	inner domain.Embedder
}

// OpenCache opens (or creates) the cache database at path and wraps
// inner with it.
func OpenCache(path string, inner domain.Embedder) (*Cache, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedding cache: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketVectors)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Cache{db: db, inner: inner}, nil
}

// Name returns the wrapped embedder's identifier.
func (c *Cache) Name() string { return c.inner.Name() }

// Dimension returns the wrapped embedder's dimensionality.
func (c *Cache) Dimension() int { return c.inner.Dimension() }

// Load warms up the wrapped embedder when it needs loading.
func (c *Cache) Load() error {
	if r, ok := c.inner.(RemoteEmbedder); ok {
		return r.Load()
	}
	return nil
}

// Embed returns the cached vector for word, or delegates and stores
// the result. Cache read/write failures fall through to the inner
// embedder.
func (c *Cache) Embed(word string) ([]float64, error) {
	key := c.key(word)
	var cached []float64
	_ = c.db.View(func(tx *bbolt.Tx) error {
		if raw := tx.Bucket(bucketVectors).Get(key); raw != nil {
			cached = decodeVector(raw)
		}
		return nil
	})
	if cached != nil {
		return cached, nil
	}

	vec, err := c.inner.Embed(word)
	if err != nil {
		return nil, err
	}
	_ = c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketVectors).Put(key, encodeVector(vec))
	})
	return vec, nil
}

// Close releases the underlying database.
func (c *Cache) Close() error { return c.db.Close() }

func (c *Cache) key(word string) []byte {
	return []byte(c.inner.Name() + "/" + word)
}

func encodeVector(vec []float64) []byte {
	buf := make([]byte, 8*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func decodeVector(raw []byte) []float64 {
	vec := make([]float64, len(raw)/8)
	for i := range vec {
		vec[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	return vec
}
