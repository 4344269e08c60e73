package score

import "math/rand/v2"

// Selector picks the scoring configuration for a single price item. Every
// item in a batch gets its own Select call, so different items in the same
// record may end up with different configurations. The production
// implementation draws uniformly at random; tests substitute deterministic
// stubs to make the pipeline reproducible.
type Selector interface {
	Select(configs []Config) (Config, error)
}

// RandomSelector selects a configuration uniformly at random, independently
// on every call.
type RandomSelector struct{}

// Select returns a uniformly random element of configs. An empty list is a
// ConfigurationError, reported before any arithmetic runs for the item.
func (RandomSelector) Select(configs []Config) (Config, error) {
	if len(configs) == 0 {
		return Config{}, NewConfigurationError("no scoring configurations available")
	}
	return configs[rand.IntN(len(configs))], nil
}
