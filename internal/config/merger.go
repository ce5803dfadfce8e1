package config

// defaultMerger provides deep merging of configurations.
type defaultMerger struct{}

// Merge merges two configurations.
// The base values are only overwritten if the override values are non-empty.
func (m *defaultMerger) Merge(base, override *Config) *Config {
	result := *base // Copy base

	// Merge log config
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		result.Log.Format = override.Log.Format
	}
	if override.Log.Output != "" {
		result.Log.Output = override.Log.Output
	}

	// Merge organize config
	if override.Organize.Recursive {
		result.Organize.Recursive = override.Organize.Recursive
	}
	if override.Organize.DeleteEmpty {
		result.Organize.DeleteEmpty = override.Organize.DeleteEmpty
	}
	if override.Organize.Format != "" {
		result.Organize.Format = override.Organize.Format
	}
	if override.Organize.Output != "" {
		result.Organize.Output = override.Organize.Output
	}

	// Merge store config
	if override.Store.Dir != "" {
		result.Store.Dir = override.Store.Dir
	}

	return &result
}
