package store

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dongchun97/trans-test/internal/model"
)

// AffixIndex maps an affix or root literal to its record, keeping file order.
// Keys are matched exactly, hyphen markers included.
type AffixIndex struct {
	keys       []string
	records    map[string]model.AffixRecord
	duplicates []string
}

type affixEntry struct {
	Affix       string          `json:"affix"`
	Type        model.AffixType `json:"type"`
	Meaning     string          `json:"meaning"`
	Description string          `json:"description"`
	Examples    []string        `json:"examples"`
}

// LoadAffixes decodes prefixes.json. Entries without a type are classified by
// model.InferAffixType.
func LoadAffixes(r io.Reader) (*AffixIndex, error) {
	idx, err := loadIndex(r, func(key string, e affixEntry) (model.AffixType, error) {
		switch e.Type {
		case "":
			return model.InferAffixType(key), nil
		case model.AffixPrefix, model.AffixSuffix:
			return e.Type, nil
		default:
			return "", fmt.Errorf("unsupported affix type %q", e.Type)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load affixes: %w", err)
	}
	return idx, nil
}

// LoadRoots decodes roots.json. Every entry is a root whatever its type field
// says, except a conflicting explicit type which is rejected.
func LoadRoots(r io.Reader) (*AffixIndex, error) {
	idx, err := loadIndex(r, func(key string, e affixEntry) (model.AffixType, error) {
		if e.Type != "" && e.Type != model.AffixRoot {
			return "", fmt.Errorf("unsupported root type %q", e.Type)
		}
		return model.AffixRoot, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load roots: %w", err)
	}
	return idx, nil
}

func loadIndex(r io.Reader, typeOf func(key string, e affixEntry) (model.AffixType, error)) (*AffixIndex, error) {
	keys := newOrderedKeys()
	records := make(map[string]model.AffixRecord)

	err := decodeObject(r, func(key string, raw json.RawMessage) error {
		var e affixEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
		t, err := typeOf(key, e)
		if err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}

		rec := model.AffixRecord{
			Affix:    e.Affix,
			Type:     t,
			Meaning:  e.Meaning,
			Examples: append([]string(nil), e.Examples...),
		}
		if rec.Affix == "" {
			rec.Affix = key
		}
		if rec.Meaning == "" {
			rec.Meaning = e.Description
		}

		keys.add(key)
		records[key] = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AffixIndex{
		keys:       keys.keys,
		records:    records,
		duplicates: keys.dups,
	}, nil
}

func (x *AffixIndex) Get(key string) (model.AffixRecord, bool) {
	rec, ok := x.records[key]
	if !ok {
		return model.AffixRecord{}, false
	}
	rec.Examples = append([]string(nil), rec.Examples...)
	return rec, true
}

// Records returns all records in file order.
func (x *AffixIndex) Records() []model.AffixRecord {
	out := make([]model.AffixRecord, 0, len(x.keys))
	for _, k := range x.keys {
		rec := x.records[k]
		rec.Examples = append([]string(nil), rec.Examples...)
		out = append(out, rec)
	}
	return out
}

func (x *AffixIndex) Len() int {
	return len(x.keys)
}

func (x *AffixIndex) Duplicates() []string {
	return append([]string(nil), x.duplicates...)
}
