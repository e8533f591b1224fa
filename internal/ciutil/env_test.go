package ciutil

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearCI(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI} {
		t.Setenv(name, "")
	}
}

func TestIsCI(t *testing.T) {
	clearCI(t)
	assert.False(t, IsCI())

	t.Setenv(EnvGitHubActions, "true")
	assert.True(t, IsCI())
}

func TestGetEnvWithFallbacks(t *testing.T) {
	t.Setenv("TQ_PRIMARY", "")
	t.Setenv("TQ_SECONDARY", "")

	assert.Equal(t, "default", GetEnvWithFallbacks([]string{"TQ_PRIMARY", "TQ_SECONDARY"}, "default", nil))

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	t.Setenv("TQ_SECONDARY", "postgres://app:s3cret@db:5432/tasks")
	got := GetEnvWithFallbacks([]string{"TQ_PRIMARY", "TQ_SECONDARY"}, "default", log)
	assert.Equal(t, "postgres://app:s3cret@db:5432/tasks", got)
	assert.Contains(t, buf.String(), "Using fallback environment variable")
	assert.NotContains(t, buf.String(), "s3cret")

	buf.Reset()
	t.Setenv("TQ_PRIMARY", "primary")
	assert.Equal(t, "primary", GetEnvWithFallbacks([]string{"TQ_PRIMARY", "TQ_SECONDARY"}, "default", log))
	assert.Empty(t, buf.String())
}
