package formatted

// Option configures how From renders a foreign value.
type Option func(*config)

type config struct {
	render Renderer
}

// WithRenderer sets the renderer used for foreign values. Nil selects Verbose.
func WithRenderer(r Renderer) Option { return func(c *config) { c.render = r } }

func newConfig(opts []Option) config {
	c := config{render: Verbose}
	for _, o := range opts {
		o(&c)
	}

	if c.render == nil {
		c.render = Verbose
	}

	return c
}
