package osm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConditions(t *testing.T) {
	conditions := ParseConditions("building+name,shop")

	assert.Len(t, conditions, 2)
	assert.Equal(t, []string{"building", "name"}, conditions["building+name"])
	assert.Equal(t, []string{"shop"}, conditions["shop"])
}

func TestParseConditionsEmptyGroups(t *testing.T) {
	assert.Empty(t, ParseConditions(""))
	assert.Len(t, ParseConditions("shop,"), 1)
}

func TestMatchesAnySingleKey(t *testing.T) {
	conditions := ParseConditions("building")

	assert.True(t, MatchesAny(map[string]string{"building": "yes"}, conditions))
	assert.False(t, MatchesAny(map[string]string{"shop": "bakery"}, conditions))
}

func TestMatchesAnyAndGroup(t *testing.T) {
	conditions := ParseConditions("building+name")

	assert.True(t, MatchesAny(map[string]string{"building": "yes", "name": "town hall"}, conditions))
	assert.False(t, MatchesAny(map[string]string{"building": "yes"}, conditions))
}

func TestMatchesAnyKeyValue(t *testing.T) {
	conditions := ParseConditions("leisure:park")

	assert.True(t, MatchesAny(map[string]string{"leisure": "park"}, conditions))
	assert.False(t, MatchesAny(map[string]string{"leisure": "pitch"}, conditions))
}

func TestMatchesAnyOrGroups(t *testing.T) {
	conditions := ParseConditions("building,shop")

	assert.True(t, MatchesAny(map[string]string{"shop": "bakery"}, conditions))
	assert.True(t, MatchesAny(map[string]string{"building": "yes"}, conditions))
	assert.False(t, MatchesAny(map[string]string{"highway": "residential"}, conditions))
}
