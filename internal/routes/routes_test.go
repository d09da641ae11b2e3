package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/dashboard", "/dashboard"},
		{"/send?to=alice", "/send"},
		{"/send#top", "/send"},
		{"/send?to=alice#top", "/send"},
		{"/transactions?page=2&sort=date", "/transactions"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestContains(t *testing.T) {
	table := Default()

	assert.True(t, table.Contains("/dashboard"))
	assert.True(t, table.Contains("/send/confirm"))
	assert.True(t, table.Contains("/kyc/documents?step=2"), "query stripped before lookup")
	assert.False(t, table.Contains("/not-a-real-route"))
	assert.False(t, table.Contains("/dashboard/extra"))
	assert.False(t, table.Contains("dashboard"), "exact match only")
}

func TestFallback(t *testing.T) {
	table := Default()
	assert.Equal(t, Dashboard, table.Fallback(true))
	assert.Equal(t, Login, table.Fallback(false))
}

func TestAll_DefensiveCopy(t *testing.T) {
	table := Default()
	all := table.All()
	all[0] = "/mutated"
	assert.NotEqual(t, "/mutated", table.All()[0])
}
