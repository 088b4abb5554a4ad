package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by a Source when the named document does not exist.
var ErrNotFound = errors.New("dataset document not found")

// Source yields the raw JSON documents a dataset is built from.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	String() string
}

// FileSource reads documents from a directory on disk.
type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

func (s *FileSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path := filepath.Join(s.Dir, name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

func (s *FileSource) String() string {
	return "file:" + s.Dir
}

// MemorySource serves documents held in memory, keyed by name.
type MemorySource map[string][]byte

func (s MemorySource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	data, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s MemorySource) String() string {
	return "memory"
}

// StringGetter is the part of a Redis client RedisSource needs.
// *redis.Client and *redis.ClusterClient satisfy it.
type StringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisSource reads documents stored as plain string values under
// "<prefix>dataset:<name>".
type RedisSource struct {
	client StringGetter
	prefix string
}

func NewRedisSource(client StringGetter, prefix string) *RedisSource {
	return &RedisSource{client: client, prefix: prefix}
}

func (s *RedisSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := Key(s.prefix, name)
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: redis key %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to fetch redis key %s: %w", key, err)
	}
	return io.NopCloser(bytes.NewReader(val)), nil
}

func (s *RedisSource) String() string {
	return "redis:" + s.prefix + "dataset:*"
}

// Key builds the Redis key a dataset document is stored under.
func Key(prefix, name string) string {
	return prefix + "dataset:" + name
}
