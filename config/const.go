package config

// Size units.
const (
	KiB = 1024
	MiB = 1024 * KiB
)

// Input limits.
const (
	// MaxLineSize is the longest input line the sorter accepts.
	MaxLineSize = 16 * MiB
)

// Benchmark defaults.
const (
	// DefaultBenchSize is the number of elements each benchmark workload uses.
	DefaultBenchSize = 100_000
	// DefaultBenchSeed seeds the pseudo-random benchmark input.
	DefaultBenchSeed = 42
)
