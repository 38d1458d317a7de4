package espn

import (
	"github.com/riskibarqy/sportsfeed/internal/domain/athlete"
)

// normalizeSplits zips the shared label list against every split's values.
// A split whose value count differs from the label count is dropped.
func normalizeSplits(doc map[string]any) athlete.SplitStats {
	labels := getStringSlice(doc, "labels")
	out := make(athlete.SplitStats)
	if len(labels) == 0 {
		return out
	}

	add := func(split map[string]any) {
		name := firstNonEmpty(getString(split, "displayName"), getString(split, "name"))
		values := getStringSlice(split, "stats")
		if name == "" || len(values) != len(labels) {
			return
		}
		if _, exists := out[name]; exists {
			return
		}
		stats := make(map[string]string, len(labels))
		for i, label := range labels {
			stats[label] = values[i]
		}
		out[name] = stats
	}

	for _, category := range getMaps(doc, "splitCategories") {
		for _, split := range getMaps(category, "splits") {
			add(split)
		}
	}
	for _, split := range getMaps(doc, "splits") {
		add(split)
	}
	return out
}
