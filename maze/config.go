package maze

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazeworld/kruskal"
)

// Option configures a Maze at construction time.
type Option func(*config)

// config aggregates every knob New understands. Later options override
// earlier ones.
type config struct {
	bias kruskal.Bias
	seed int64
	rng  *rand.Rand
	log  logrus.FieldLogger
}

// newConfig applies opts over deterministic defaults: no bias, seed 0 (the
// kruskal default seed) and the logrus standard logger.
func newConfig(opts ...Option) config {
	cfg := config{
		bias: kruskal.None,
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = kruskal.NewRand(cfg.seed)
	}
	return cfg
}

// WithBias sets the edge-draw bias.
func WithBias(b kruskal.Bias) Option {
	return func(c *config) { c.bias = b }
}

// WithSeed seeds the maze's private RNG. Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRand uses rng for every random draw. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
