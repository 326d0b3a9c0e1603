package paths

import "github.com/arvel-sg/semicore/constants"

// Strategy selects the algorithm NumberOfPaths uses to count paths.
type Strategy int

const (
	// Automatic picks Matrix or DFS based on the size of the requested
	// length range relative to the graph.
	Automatic Strategy = iota
	// Matrix counts paths by multiplying a row vector by the integer
	// adjacency matrix once per length, summing over the length range.
	Matrix
	// DFS counts paths by a depth-bounded layer-by-layer expansion from
	// the source, without ever materializing a word.
	DFS
)

// Config holds the bounds and algorithm choice shared by the enumerators
// and NumberOfPaths. The length range is [Min, Max): Min is inclusive, Max
// is exclusive.
type Config struct {
	Min      int64
	Max      int64
	Target   uint32 // constants.Undefined means "any endpoint"
	Strategy Strategy
}

// Option configures a path enumeration or count.
type Option func(*Config)

// DefaultConfig returns a Config matching every path of every length from
// the source, to no particular endpoint.
func DefaultConfig() Config {
	return Config{
		Min:      0,
		Max:      constants.PositiveInfinity,
		Target:   constants.Undefined,
		Strategy: Automatic,
	}
}

// WithMin sets the minimum path length (inclusive). Default 0.
func WithMin(min int64) Option {
	return func(c *Config) { c.Min = min }
}

// WithMax sets the maximum path length (exclusive). Default
// constants.PositiveInfinity.
func WithMax(max int64) Option {
	return func(c *Config) { c.Max = max }
}

// WithTarget restricts enumeration or counting to paths ending at t.
func WithTarget(t uint32) Option {
	return func(c *Config) { c.Target = t }
}

// WithStrategy selects the counting algorithm for NumberOfPaths. Ignored by
// the lazy enumerators.
func WithStrategy(s Strategy) Option {
	return func(c *Config) { c.Strategy = s }
}
