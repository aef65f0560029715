package basedirs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultRecordName is the name of the persisted record holding the list.
const DefaultRecordName = "styr-config"

// ErrCorruptRecord is returned by a Backend whose stored record cannot be decoded.
var ErrCorruptRecord = errors.New("corrupt base directory record")

// Record is the persisted shape of the list.
type Record struct {
	BaseDirs []string `json:"baseDirs"`
}

// Backend persists the whole Record as one unit.
// Load returns an empty Record when nothing has been stored yet.
type Backend interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, rec Record) error
	Close() error
}

func encodeRecord(rec Record) ([]byte, error) {
	if rec.BaseDirs == nil {
		rec.BaseDirs = []string{}
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return payload, nil
}

func decodeRecord(payload []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if rec.BaseDirs == nil {
		rec.BaseDirs = []string{}
	}
	return rec, nil
}

// dedupe keeps the first occurrence of every path, preserving order.
func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
