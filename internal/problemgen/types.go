package problemgen

// Problem is a generated word problem with its canonical numeric answer.
type Problem struct {
	Text   string
	Answer float64
}

// Config holds generation parameters.
type Config struct {
	// MaxTokens is the response budget for a single generation.
	MaxTokens int

	// Temperature controls variety between generated problems.
	Temperature float64
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
