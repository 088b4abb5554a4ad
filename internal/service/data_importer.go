package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dongchun97/trans-test/internal/common"
	"github.com/dongchun97/trans-test/internal/dataset"
)

// DataImporter copies a dataset into Redis so servers can load it with a
// RedisSource. It is run out of band; the HTTP service never writes.
type DataImporter interface {
	ImportFromSource(ctx context.Context, src dataset.Source) (ImportSummary, error)
	GetImportStatus() string
	ClearDataset(ctx context.Context) error
}

// ImportSummary is also stored as JSON under the metadata key.
type ImportSummary struct {
	WordCount   int    `json:"word_count"`
	PrefixCount int    `json:"prefix_count"`
	RootCount   int    `json:"root_count"`
	Status      string `json:"status"`
	Timestamp   int64  `json:"timestamp"`
}

const metadataName = "metadata"

type dataImporter struct {
	redisClient redis.Cmdable
	prefix      string
	logger      *common.Logger

	mu     sync.Mutex
	status string
}

func NewDataImporter(redisClient redis.Cmdable, prefix string, logger *common.Logger) DataImporter {
	return &dataImporter{
		redisClient: redisClient,
		prefix:      prefix,
		logger:      logger,
		status:      "ready",
	}
}

func (d *dataImporter) setStatus(s string) {
	d.mu.Lock()
	d.status = s
	d.mu.Unlock()
}

// ImportFromSource reads every dataset document from src, checks that the
// whole set loads, and only then writes it to Redis in one pipeline.
func (d *dataImporter) ImportFromSource(ctx context.Context, src dataset.Source) (ImportSummary, error) {
	d.setStatus("importing")
	defer d.setStatus("ready")

	docs := make(dataset.MemorySource, len(dataset.Files))
	for _, name := range dataset.Files {
		data, err := readAll(ctx, src, name)
		if err != nil {
			return ImportSummary{}, err
		}
		docs[name] = data
	}

	ds, err := dataset.Load(ctx, docs, d.logger)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("refusing to import invalid dataset: %w", err)
	}

	summary := ImportSummary{
		WordCount:   ds.Lexicon.Len(),
		PrefixCount: ds.Affixes.Len(),
		RootCount:   ds.Roots.Len(),
		Status:      "completed",
		Timestamp:   time.Now().Unix(),
	}
	metadataJSON, err := json.Marshal(summary)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	pipeline := d.redisClient.TxPipeline()
	for _, name := range dataset.Files {
		pipeline.Set(ctx, dataset.Key(d.prefix, name), docs[name], 0)
	}
	pipeline.Set(ctx, dataset.Key(d.prefix, metadataName), metadataJSON, 0)
	if _, err := pipeline.Exec(ctx); err != nil {
		return ImportSummary{}, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	d.logger.Info().
		Str("source", src.String()).
		Str("prefix", d.prefix).
		Int("words", summary.WordCount).
		Int("prefixes", summary.PrefixCount).
		Int("roots", summary.RootCount).
		Msg("Dataset imported into redis")

	return summary, nil
}

func readAll(ctx context.Context, src dataset.Source, name string) ([]byte, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (d *dataImporter) GetImportStatus() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// ClearDataset removes the dataset keys under this importer's prefix only.
func (d *dataImporter) ClearDataset(ctx context.Context) error {
	keys := make([]string, 0, len(dataset.Files)+1)
	for _, name := range dataset.Files {
		keys = append(keys, dataset.Key(d.prefix, name))
	}
	keys = append(keys, dataset.Key(d.prefix, metadataName))

	if err := d.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear dataset: %w", err)
	}
	return nil
}
