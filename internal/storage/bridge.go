// Package storage persists the activity list as a single JSON snapshot in a
// key-value store.
package storage

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/errors"
)

// KV is the byte store the bridge writes through. *db.KV implements it.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Bridge loads and saves the activity list under a fixed key.
type Bridge struct {
	kv     KV
	key    string
	strict bool
}

// New creates a Bridge. With strict set, Load reports malformed snapshots
// instead of falling back to an empty list.
func New(kv KV, key string, strict bool) *Bridge {
	return &Bridge{kv: kv, key: key, strict: strict}
}

// Key returns the storage key.
func (b *Bridge) Key() string {
	return b.key
}

// Load reads the stored activity list. A missing key yields an empty list.
func (b *Bridge) Load(ctx context.Context) ([]activity.Activity, error) {
	data, found, err := b.kv.Get(ctx, b.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []activity.Activity{}, nil
	}

	activities, err := Decode(data)
	if err != nil {
		if b.strict {
			return nil, errors.NewCorruptSnapshot(b.key, err)
		}
		log.Printf("WARNING: stored snapshot %q is malformed, starting with an empty list: %v", b.key, err)
		return []activity.Activity{}, nil
	}
	return activities, nil
}

// Save replaces the stored activity list.
func (b *Bridge) Save(ctx context.Context, activities []activity.Activity) error {
	data, err := Encode(activities)
	if err != nil {
		return errors.NewInternal(err)
	}
	return b.kv.Put(ctx, b.key, data)
}

// Encode serializes activities as a JSON array. A nil list encodes as [].
func Encode(activities []activity.Activity) ([]byte, error) {
	if activities == nil {
		activities = []activity.Activity{}
	}
	return json.Marshal(activities)
}

// Decode parses a JSON array of activities. A JSON null decodes as an empty
// list; any other non-array value is an error.
func Decode(data []byte) ([]activity.Activity, error) {
	var activities []activity.Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []activity.Activity{}
	}
	return activities, nil
}
