package atlas

// Size limits accepted by Config.Validate.
const (
	// DefaultSize is the default atlas dimension (512x512).
	DefaultSize = 512

	// MinSize is the smallest accepted atlas dimension.
	MinSize = 16

	// MaxSize is the largest accepted atlas dimension.
	MaxSize = 8192

	// DefaultDumpPath is where the debug PNG is written unless overridden.
	DefaultDumpPath = "data/atlas.png"
)

// Config holds FontAtlas configuration.
type Config struct {
	// Size is the atlas texture size (width = height).
	// Must be a power of 2. Default: 512
	Size int

	// Backend names the glyph rasterization backend.
	// Default: "" (the glyph package default)
	Backend string

	// Dump enables writing the atlas as PNG after Build.
	Dump bool

	// DumpPath is the PNG destination. Default: data/atlas.png
	DumpPath string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Size:     DefaultSize,
		DumpPath: DefaultDumpPath,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Size < MinSize {
		return &ConfigError{Field: "Size", Reason: "must be at least 16"}
	}
	if c.Size > MaxSize {
		return &ConfigError{Field: "Size", Reason: "must be at most 8192"}
	}
	if c.Size&(c.Size-1) != 0 {
		return &ConfigError{Field: "Size", Reason: "must be power of 2"}
	}
	if c.Dump && c.DumpPath == "" {
		return &ConfigError{Field: "DumpPath", Reason: "must be set when Dump is enabled"}
	}
	return nil
}

// Option configures a FontAtlas.
type Option func(*Config)

// WithSize sets the atlas dimension. It must be a power of two.
func WithSize(size int) Option {
	return func(c *Config) {
		c.Size = size
	}
}

// WithBackend selects the glyph rasterization backend ("ximage" or
// "freetype", or a name registered with glyph.RegisterBackend).
func WithBackend(name string) Option {
	return func(c *Config) {
		c.Backend = name
	}
}

// WithDebugDump enables the PNG dump after Build. An empty path keeps
// DefaultDumpPath.
func WithDebugDump(path string) Option {
	return func(c *Config) {
		c.Dump = true
		if path != "" {
			c.DumpPath = path
		}
	}
}
