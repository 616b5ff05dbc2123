package glyph

// Option configures Loader creation.
type Option func(*loaderConfig)

// loaderConfig holds configuration for a Loader.
type loaderConfig struct {
	backendName string
}

// defaultLoaderConfig returns the default loader configuration.
func defaultLoaderConfig() loaderConfig {
	return loaderConfig{
		backendName: defaultBackendName,
	}
}

// WithBackend selects the rasterization backend by name.
// The default is "ximage"; unknown names fall back to it.
func WithBackend(name string) Option {
	return func(c *loaderConfig) {
		c.backendName = name
	}
}
