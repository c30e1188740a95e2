package journal

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// legacyTagSeparator is the delimiter of the pre-JSON tags encoding.
const legacyTagSeparator = ";"

// NormalizeTags canonicalizes a tag list into a sorted set:
// whitespace trimmed, lowercased, empties dropped, duplicates removed.
// Returns nil when nothing remains.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var result []string
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}

// EncodeTags renders a tag list as the stored cell value: a JSON array
// of normalized tags. An empty list encodes as "[]".
func EncodeTags(tags []string) string {
	normalized := NormalizeTags(tags)
	if normalized == nil {
		normalized = []string{}
	}
	data, err := json.Marshal(normalized)
	if err != nil {
		// A []string cannot fail to marshal; keep the store well-formed anyway.
		return "[]"
	}
	return string(data)
}

// DecodeTags parses a stored tags cell into a normalized tag list.
// The structured form is a JSON array; the legacy form is
// semicolon-joined ("a;b;c"). Both decode to the same set.
func DecodeTags(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	var parsed []any
	if err := json.Unmarshal([]byte(cell), &parsed); err == nil {
		tags := make([]string, 0, len(parsed))
		for _, item := range parsed {
			if item == nil {
				continue
			}
			tags = append(tags, fmt.Sprint(item))
		}
		return NormalizeTags(tags)
	}

	return NormalizeTags(strings.Split(cell, legacyTagSeparator))
}
