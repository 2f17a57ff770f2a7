package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKoanfFromEnv(t *testing.T) {
	t.Setenv("PARSERTEST_PROJECT", "my-project")
	t.Setenv("PARSERTEST_API_URL", "https://rules.test.local")
	t.Setenv("PARSERTEST_SOME__KEY", "value")
	t.Setenv("PARSERTEST_RETRY_COUNT", "3")
	t.Setenv("PARSERTEST_ENABLED", "true")

	konf, err := koanfFromEnv("PARSERTEST_")

	require.NoError(t, err)
	assert.Equal(t, "my-project", konf.Get("project"))
	assert.Equal(t, "https://rules.test.local", konf.Get("api.url"))
	assert.Equal(t, "value", konf.Get("some_key"))
	assert.Equal(t, 3, konf.Get("retry.count"))
	assert.Equal(t, true, konf.Get("enabled"))
}

func TestToRealType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, toRealType("42"))
	assert.Equal(t, true, toRealType("true"))
	assert.Equal(t, 1.5, toRealType("1.5"))
	assert.Equal(t, "foo", toRealType("foo"))
}
