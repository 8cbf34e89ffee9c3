package shell

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testPromptEnv = "LABSHELL_TEST_PROMPT"

func TestGetPrompt(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv(testPromptEnv, "")
		os.Unsetenv(testPromptEnv)

		assert.Equal(t, DefaultPrompt, GetPrompt(testPromptEnv))
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv(testPromptEnv, "my-prompt$ ")

		assert.Equal(t, "my-prompt$ ", GetPrompt(testPromptEnv))
	})

	t.Run("set-empty", func(t *testing.T) {
		t.Setenv(testPromptEnv, "")

		assert.Equal(t, "", GetPrompt(testPromptEnv))
	})
}

func TestResolvePrompt(t *testing.T) {
	t.Setenv(testPromptEnv, "")
	os.Unsetenv(testPromptEnv)

	assert.Equal(t, "fallback>", ResolvePrompt(testPromptEnv, "fallback>"))
}
