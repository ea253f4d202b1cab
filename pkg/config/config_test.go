package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCSV(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single", in: "kafka:9092", want: []string{"kafka:9092"}},
		{name: "spaces and blanks", in: " a:1 , ,b:2,", want: []string{"a:1", "b:2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CSV(tt.in))
		})
	}
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("BOUTIQUE_TEST_STR", "value")
	t.Setenv("BOUTIQUE_TEST_INT", "42")
	t.Setenv("BOUTIQUE_TEST_BAD_INT", "forty-two")
	t.Setenv("BOUTIQUE_TEST_DUR", "90s")
	t.Setenv("BOUTIQUE_TEST_BOOL", "false")

	assert.Equal(t, "value", EnvDefault("BOUTIQUE_TEST_STR", "def"))
	assert.Equal(t, "def", EnvDefault("BOUTIQUE_TEST_MISSING", "def"))
	assert.Equal(t, 42, EnvIntDefault("BOUTIQUE_TEST_INT", 1))
	assert.Equal(t, 1, EnvIntDefault("BOUTIQUE_TEST_BAD_INT", 1))
	assert.Equal(t, 90*time.Second, EnvDurationDefault("BOUTIQUE_TEST_DUR", time.Second))
	assert.Equal(t, time.Second, EnvDurationDefault("BOUTIQUE_TEST_MISSING", time.Second))
	assert.False(t, EnvBoolDefault("BOUTIQUE_TEST_BOOL", true))
	assert.True(t, EnvBoolDefault("BOUTIQUE_TEST_MISSING", true))
	assert.True(t, EnvBoolDefault("BOUTIQUE_TEST_STR", true))
}

func TestRequireNonEmpty(t *testing.T) {
	assert.NoError(t, RequireNonEmpty("x", "JWT_SECRET"))
	assert.EqualError(t, RequireNonEmpty("", "JWT_SECRET"), "missing required env JWT_SECRET")
}
