package rbtree

// Config holds the settings of a Tree.
type Config struct {
	// MaxNodes caps the number of keys held by the tree. Zero means the
	// tree is only limited by its index space.
	MaxNodes int

	// InitialCapacity preallocates room for that many nodes.
	InitialCapacity int

	Observer Observer
}

type Option func(c *Config)

func WithMaxNodes(n int) Option {
	return func(c *Config) {
		c.MaxNodes = n
	}
}

func WithInitialCapacity(n int) Option {
	return func(c *Config) {
		c.InitialCapacity = n
	}
}

// WithObserver installs an Observer that is told about every rotation and
// fix-up case.
func WithObserver(o Observer) Option {
	return func(c *Config) {
		c.Observer = o
	}
}
