package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemFilter_Narrowed(t *testing.T) {
	tests := []struct {
		name      string
		filter    ItemFilter
		permitted []string
		want      string
	}{
		{"unrestricted caller", ItemFilter{ClientID: "any"}, nil, "any"},
		{"requested client is permitted", ItemFilter{ClientID: "b"}, []string{"a", "b"}, "b"},
		{"requested client outside set", ItemFilter{ClientID: "x"}, []string{"a", "b"}, "a"},
		{"no client requested", ItemFilter{}, []string{"a", "b"}, "a"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filter.Narrowed(tc.permitted)
			assert.Equal(t, tc.want, got.ClientID)
		})
	}
}

func TestItemFilter_NarrowedKeepsOtherFields(t *testing.T) {
	f := ItemFilter{ClientID: "x", Search: "launch"}
	got := f.Narrowed([]string{"a"})
	assert.Equal(t, "a", got.ClientID)
	assert.Equal(t, "launch", got.Search, "other constraints survive narrowing")
}
