package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
	}{
		{"int64", int64(1500), 1500},
		{"int", 42, 42},
		{"float", 3.9, 3},
		{"string", " 17 ", 17},
		{"bytes", []byte("8"), 8},
		{"bool", true, 1},
		{"garbage", "abc", 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt64(tt.in))
		})
	}
}

func TestToFloat64(t *testing.T) {
	assert.Equal(t, 1.5, ToFloat64("1.5"))
	assert.Equal(t, float64(1500), ToFloat64(int64(1500)))
	assert.Equal(t, 0.25, ToFloat64(float32(0.25)))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "12", ToString(12))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(int64(1)))
	assert.True(t, ToBool(int64(2)))
	assert.False(t, ToBool(int64(0)))
	assert.True(t, ToBool("true"))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(3.0))
}

func TestToUnixTime(t *testing.T) {
	assert.Nil(t, ToUnixTime(int64(0)))
	assert.Nil(t, ToUnixTime(int64(-5)))

	got := ToUnixTime(int64(1700000000))
	if assert.NotNil(t, got) {
		assert.True(t, got.Equal(time.Unix(1700000000, 0)))
	}
}
