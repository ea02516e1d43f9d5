package parser

import "strings"

// collectEntries groups consecutive section lines into discrete entries.
// start decides whether a line opens a new entry (flushing the pending
// one), augment folds any other non-empty line into the active entry.
// Lines before the first entry are dropped. A non-positive limit means
// uncapped.
func collectEntries[T any](section string, limit int, start func(line string) (T, bool), augment func(entry *T, line string)) []T {
	var entries []T
	var active *T

	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if entry, ok := start(line); ok {
			if active != nil {
				entries = append(entries, *active)
			}
			pending := entry
			active = &pending
			continue
		}
		if active != nil {
			augment(active, line)
		}
	}
	if active != nil {
		entries = append(entries, *active)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func stripBullet(line string) (string, bool) {
	for _, prefix := range []string{"•", "-", "*", "·"} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return line, false
}
