package uid

import (
	"hash/fnv"
	"os"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-ordered int64 identifiers.
//
// The node number is derived from the hostname so replicas of the same
// service produce non-colliding ids without coordination.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a Snowflake generator bound to this host.
func NewSnowflake() (*Snowflake, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	h := fnv.New32a()
	if _, err := h.Write([]byte(hostname)); err != nil {
		return nil, err
	}

	// snowflake node numbers are 10 bits by default
	node, err := snowflake.NewNode(int64(h.Sum32() % 1024))
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new int64 identifier.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
