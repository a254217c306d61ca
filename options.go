package succinct

const (
	defaultSuperblockBits = 1 << 15
	minSuperblockBits     = 64
	maxSuperblockBits     = 1 << 16 // relative block counts are uint16
)

// RankOption is a functional option for configuring rank support construction.
type RankOption func(*rankConfig)

type rankConfig struct {
	superblockBits int
}

func defaultRankConfig() *rankConfig {
	return &rankConfig{
		superblockBits: defaultSuperblockBits,
	}
}

// WithSuperblockBits sets the number of bits covered by each absolute count
// in a JacobsonRank directory. n must be a power of two in [64, 65536].
// Smaller superblocks enlarge the directory without speeding up queries.
func WithSuperblockBits(n int) RankOption {
	return func(c *rankConfig) {
		c.superblockBits = n
	}
}
