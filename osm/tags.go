package osm

import "strings"

// ParseConditions parses a comma-separated list of tag conditions, with AND
// conditions grouped by a '+', e.g. "building+name,shop". Each condition is
// a key or a key:value pair.
func ParseConditions(list string) map[string][]string {
	conditions := make(map[string][]string)
	for _, group := range strings.Split(list, ",") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		conditions[group] = strings.Split(group, "+")
	}
	return conditions
}

// MatchesAny reports whether the tags satisfy at least one condition group.
func MatchesAny(tags map[string]string, groups map[string][]string) bool {
	for _, conditions := range groups {
		if matchesAll(tags, conditions) {
			return true
		}
	}
	return false
}

// matchesAll requires every condition in the group to hold.
func matchesAll(tags map[string]string, conditions []string) bool {
	for _, condition := range conditions {
		pair := strings.SplitN(condition, ":", 2)

		val, found := tags[pair[0]]
		if !found {
			return false
		}

		if len(pair) > 1 && val != pair[1] {
			return false
		}
	}
	return true
}

func hasTags(tags map[string]string) bool {
	return len(tags) > 0
}
