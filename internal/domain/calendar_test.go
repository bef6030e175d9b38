package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLoad(t *testing.T) {
	tests := []struct {
		count int
		want  LoadLevel
	}{
		{count: 0, want: LoadLevelLow},
		{count: 5, want: LoadLevelLow},
		{count: 6, want: LoadLevelMedium},
		{count: 12, want: LoadLevelMedium},
		{count: 13, want: LoadLevelHigh},
		{count: 16, want: LoadLevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyLoad(tt.count), "count=%d", tt.count)
	}
}

func TestServiceScope(t *testing.T) {
	all := AllServices()
	assert.False(t, all.IsSpecified())
	_, ok := all.ServiceID()
	assert.False(t, ok)

	scoped := ForService(42)
	assert.True(t, scoped.IsSpecified())
	id, ok := scoped.ServiceID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}
