package repository

import (
	"context"
	"fmt"
)

// KVStore is the external key-value capability the submission store runs
// on: string keys, JSON-serializable blobs. A missing key is a valid empty
// state, reported via found=false, never as an error.
type KVStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
}

// Day-state keys. Two records per calendar date.
func SubsKey(date string) string { return fmt.Sprintf("subs:%s", date) }
func MetaKey(date string) string { return fmt.Sprintf("meta:%s", date) }

// SnapshotKey addresses a pre-generated daily snapshot blob.
func SnapshotKey(date string) string { return fmt.Sprintf("snap:%s", date) }
