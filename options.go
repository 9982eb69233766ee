package bmpsteg

type readConfig struct {
	limits    Limits
	offset    uint32
	hasOffset bool
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

// WithReadOffset makes Reveal use off as the data offset instead of reading
// it from the carrier header.
func WithReadOffset(off uint32) ReadOption {
	return func(c *readConfig) {
		c.offset = off
		c.hasOffset = true
	}
}

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

type writeConfig struct {
	limits    Limits
	offset    uint32
	hasOffset bool
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

// WithWriteOffset makes Hide use off as the data offset instead of reading
// it from the carrier header.
func WithWriteOffset(off uint32) WriteOption {
	return func(c *writeConfig) {
		c.offset = off
		c.hasOffset = true
	}
}

func newWriteConfig(opts []WriteOption) writeConfig {
	cfg := writeConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}
