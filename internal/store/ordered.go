// Package store holds the immutable in-memory indices the dictionary is
// served from: the lexicon (word -> record) and the affix/root indices.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// decodeObject walks a top-level JSON object in document order and calls fn
// with every key and its undecoded value. Go maps forget insertion order, and
// suggestions must follow the order of the source file.
func decodeObject(r io.Reader, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read opening token: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("read value of %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read closing token: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

// orderedKeys tracks first-seen position of keys. A repeated key keeps its
// original slot; the caller overwrites the value.
type orderedKeys struct {
	keys []string
	seen map[string]struct{}
	dups []string
}

func newOrderedKeys() *orderedKeys {
	return &orderedKeys{seen: make(map[string]struct{})}
}

func (o *orderedKeys) add(key string) {
	if _, ok := o.seen[key]; ok {
		o.dups = append(o.dups, key)
		return
	}
	o.seen[key] = struct{}{}
	o.keys = append(o.keys, key)
}
