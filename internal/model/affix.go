package model

import "strings"

type AffixType string

const (
	AffixPrefix AffixType = "prefix"
	AffixSuffix AffixType = "suffix"
	AffixRoot   AffixType = "root"
)

// AffixRecord describes a prefix, suffix or root. Affix is the literal as
// written in the source data and may carry hyphen markers ("un-", "-ness").
type AffixRecord struct {
	Affix    string    `json:"affix"`
	Type     AffixType `json:"type"`
	Meaning  string    `json:"meaning"`
	Examples []string  `json:"examples,omitempty"`
}

// MatchLiteral is the string compared against words during classification:
// the affix with its leading and trailing hyphen markers removed.
func (r AffixRecord) MatchLiteral() string {
	return strings.Trim(r.Affix, "-")
}

// InferAffixType guesses the type of a key from prefixes.json when the entry
// does not declare one: "-ness" is a suffix, everything else a prefix.
func InferAffixType(key string) AffixType {
	if strings.HasPrefix(key, "-") {
		return AffixSuffix
	}
	return AffixPrefix
}
