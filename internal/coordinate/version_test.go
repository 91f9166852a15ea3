package coordinate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected int
	}{
		{"1.0", "2.0", -1},
		{"1.12.0", "1.9.0", 1},
		{"1.0", "1.0.0", 0},
		{"2.0.0-alpha01", "2.0.0", -1},
		{"1.+", "1.0", 0},
		{"1.2.3.4", "1.2.3.10", -1},
		{"r09", "r10", -1},
		{"1.0.1", "1.0.1.1", -1},
		{"1.0.1", "1.0.1.0", 0},
		{"1.0-rc1", "1.0", -1},
		{"2.5-beta02", "2.5", -1},
		{"1.0-rc1", "1.0.0", -1},
		{"1.0-rc1", "1.0-rc2", -1},
	}
	for _, tc := range testCases {
		t.Run(tc.a+" vs "+tc.b, func(t *testing.T) {
			assert.Equal(t, tc.expected, Compare(tc.a, tc.b))
			assert.Equal(t, -tc.expected, Compare(tc.b, tc.a))
		})
	}
}

func TestMajor(t *testing.T) {
	assert.Equal(t, "1", Major("1.12.0"))
	assert.Equal(t, "2", Major("2.0"))
	assert.Equal(t, "4", Major("4.+"))
	assert.Equal(t, "1", Major("1.2.3.4"))
	assert.Equal(t, "33", Major("33.0.0-jre"))
}

func TestHighest(t *testing.T) {
	assert.Equal(t, "1.12.0", Highest("1.9.0", "1.12.0", "1.10.1"))
	assert.Equal(t, "1.0", Highest("1.0-rc1", "1.0"))
	assert.Equal(t, "2.5", Highest("2.5", "2.5-beta02"))
	assert.Equal(t, "", Highest())
}

func TestIsDynamic(t *testing.T) {
	assert.True(t, IsDynamic("1.+"))
	assert.False(t, IsDynamic("1.0"))
}
