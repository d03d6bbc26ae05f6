package api

import (
	"math/rand"
	"os"
	"strings"
)

// DefaultTokenEnv is the environment variable the default token source reads.
const DefaultTokenEnv = "HIPCHAT_API_TOKEN"

// TokenSource supplies the bearer token for a single request.
// Token returns false when no token is available, in which case the
// client logs the message instead of sending it.
type TokenSource interface {
	Token() (string, bool)
}

// StaticTokens is a fixed list of API tokens. With more than one entry
// each request picks one uniformly at random, spreading traffic across
// tokens.
type StaticTokens []string

func (s StaticTokens) Token() (string, bool) {
	return pickToken(s)
}

// EnvTokens returns a TokenSource that reads a comma separated token
// list from the named environment variable on every call, so token
// changes take effect without restarting the process.
func EnvTokens(name string) TokenSource {
	return envTokens(name)
}

type envTokens string

func (e envTokens) Token() (string, bool) {
	return pickToken(splitTokens(os.Getenv(string(e))))
}

// splitTokens splits a comma separated token list, trimming whitespace
// and dropping empty entries.
func splitTokens(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	var tokens []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// pickToken selects one token uniformly at random, skipping blank entries.
func pickToken(tokens []string) (string, bool) {
	candidates := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[rand.Intn(len(candidates))], true
}
