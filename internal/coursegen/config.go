package coursegen

// Config holds curriculum generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for curriculum generation.
// Article modules carry full instructional text, so the token cap is high.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
