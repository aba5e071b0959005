package core

import (
	"regexp"
	"sort"
)

// WordSet is an immutable set of lowercase strings used for comparing
// dictionary words against package names.
type WordSet struct {
	members map[string]struct{}
}

func NewWordSet(values []string) *WordSet {
	members := make(map[string]struct{}, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		members[value] = struct{}{}
	}
	return &WordSet{members: members}
}

func (w *WordSet) Len() int {
	return len(w.members)
}

func (w *WordSet) Contains(value string) bool {
	_, ok := w.members[value]
	return ok
}

// Matching returns the sorted members whose whole text matches re.
func (w *WordSet) Matching(re *regexp.Regexp) []string {
	var out []string
	for member := range w.members {
		if matchesWhole(re, member) {
			out = append(out, member)
		}
	}
	sort.Strings(out)
	return out
}

// Intersect returns the sorted members present in both sets.
func (w *WordSet) Intersect(other *WordSet) []string {
	var out []string
	for member := range w.members {
		if other.Contains(member) {
			out = append(out, member)
		}
	}
	sort.Strings(out)
	return out
}

// Subtract returns the sorted members of w absent from other. This is
// how "words not yet taken as package names" is computed.
func (w *WordSet) Subtract(other *WordSet) []string {
	var out []string
	for member := range w.members {
		if !other.Contains(member) {
			out = append(out, member)
		}
	}
	sort.Strings(out)
	return out
}

// WordStats counts how many dictionary words, package names, and
// strings that are both match a pattern.
type WordStats struct {
	Words int
	Names int
	Both  int
}

// CompareWords evaluates re against words, names, and their
// intersection. A nil re counts everything.
func CompareWords(words *WordSet, names *WordSet, re *regexp.Regexp) WordStats {
	if re == nil {
		both := words.Intersect(names)
		return WordStats{Words: words.Len(), Names: names.Len(), Both: len(both)}
	}
	stats := WordStats{
		Words: len(words.Matching(re)),
		Names: len(names.Matching(re)),
	}
	for _, member := range words.Intersect(names) {
		if matchesWhole(re, member) {
			stats.Both++
		}
	}
	return stats
}

// matchesWhole requires the pattern to cover the entire string, the
// semantics callers expect from name filters.
func matchesWhole(re *regexp.Regexp, value string) bool {
	loc := re.FindStringIndex(value)
	return loc != nil && loc[0] == 0 && loc[1] == len(value)
}
