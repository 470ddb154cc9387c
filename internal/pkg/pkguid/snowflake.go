package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// snowflakeEpoch is 2025-01-01T00:00:00Z in milliseconds.
const snowflakeEpoch int64 = 1735689600000

// Snowflake generates numeric IDs using the Snowflake algorithm.
type Snowflake struct {
	node *snowflake.Node
}

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	err := binary.Read(rand.Reader, binary.BigEndian, &nodeID)
	if err != nil {
		return 0, err
	}

	return nodeID & (1<<snowflake.NodeBits - 1), nil
}

// NewSnowflake constructs a Snowflake generator with a random node ID.
func NewSnowflake() (*Snowflake, error) {
	nodeID, err := generateRandomNodeID()
	if err != nil {
		return nil, err
	}

	snowflake.Epoch = snowflakeEpoch

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique numeric ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

// SnowflakeString renders Snowflake IDs in base 10 so they can be used as
// correlation IDs.
type SnowflakeString struct {
	s *Snowflake
}

// NewSnowflakeString constructs a string-valued Snowflake generator.
func NewSnowflakeString() (*SnowflakeString, error) {
	s, err := NewSnowflake()
	if err != nil {
		return nil, err
	}
	return &SnowflakeString{s: s}, nil
}

// Generate returns a new unique ID as a decimal string.
func (g *SnowflakeString) Generate() string {
	return strconv.FormatInt(g.s.Generate(), 10)
}

// NewStringID returns the string generator named by kind: "uuid" (default)
// or "snowflake".
func NewStringID(kind string) (StringID, error) {
	switch kind {
	case "", KindUUID:
		return NewUUID(), nil
	case KindSnowflake:
		gen, err := NewSnowflakeString()
		if err != nil {
			return nil, err
		}
		return gen, nil
	default:
		return nil, fmt.Errorf("unknown id generator %q", kind)
	}
}
