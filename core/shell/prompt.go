package shell

import "os"

const (
	// EnvPrompt is the environment variable holding the interactive prompt.
	EnvPrompt = "SHELL_PROMPT"

	// DefaultPrompt is shown when EnvPrompt is unset.
	DefaultPrompt = "shell>"
)

// GetPrompt returns the value of env, or DefaultPrompt if it isn't set.
func GetPrompt(env string) string {
	return ResolvePrompt(env, DefaultPrompt)
}

// ResolvePrompt returns the value of env, or fallback if it isn't set. A
// variable that is set to the empty string is returned as-is.
func ResolvePrompt(env, fallback string) string {
	if prompt, ok := os.LookupEnv(env); ok {
		return prompt
	}
	return fallback
}
