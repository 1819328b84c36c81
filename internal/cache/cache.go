package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

const megabyte = 1024 * 1024

// entryHeaderBytes is freecache's per-entry bookkeeping.
const entryHeaderBytes = 24

// ScheduleDayBytes bounds one day of an encoded schedule, including its share of the cycle table.
const ScheduleDayBytes = 112

// scheduleEnvelopeBytes covers the key and the JSON envelope of a schedule entry.
const scheduleEnvelopeBytes = 128

// Cache stores JSON-encoded values under string keys.
type Cache interface {
	Get(key string, dst any) (bool, error)
	Set(key string, value any) error
	Clear()
}

// FreeCache is a Cache backed by a fixed-size freecache ring.
// Entries are never invalidated explicitly; keys embed whatever revision makes them stale.
type FreeCache struct {
	cache  *freecache.Cache
	expire int // seconds, 0 = no expiry
}

var _ Cache = (*FreeCache)(nil)

func NewFreeCache(sizeMB int, ttl time.Duration) *FreeCache {
	return &FreeCache{
		cache:  freecache.NewCache(sizeMB * megabyte),
		expire: int(ttl / time.Second),
	}
}

// Get decodes the value stored under key into dst. A miss returns false and no error.
func (c *FreeCache) Get(key string, dst any) (bool, error) {
	raw, err := c.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.cache.Del([]byte(key))
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *FreeCache) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.cache.Set([]byte(key), raw, c.expire); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *FreeCache) Clear() {
	c.cache.Clear()
}

// MaxEntryBytes is the largest key plus value a cache of sizeMB accepts.
// freecache splits its memory into 256 segments and refuses entries over a quarter of one.
func MaxEntryBytes(sizeMB int) int {
	return sizeMB*megabyte/1024 - entryHeaderBytes
}

// MinSizeMB is the smallest cache, in megabytes, that accepts entries of entryBytes.
func MinSizeMB(entryBytes int) int {
	need := (entryBytes + entryHeaderBytes) * 1024
	return (need + megabyte - 1) / megabyte
}

// ScheduleEntryBytes bounds the key plus value of a cached schedule of the given length.
func ScheduleEntryBytes(days int) int {
	return scheduleEnvelopeBytes + days*ScheduleDayBytes
}

// EntryCount is the number of live entries.
func (c *FreeCache) EntryCount() int64 {
	return c.cache.EntryCount()
}
