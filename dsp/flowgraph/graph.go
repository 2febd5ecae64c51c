package flowgraph

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidOptions   = errors.New("flowgraph: invalid options")
	ErrDuplicateBlock   = errors.New("flowgraph: duplicate block id")
	ErrUnknownKind      = errors.New("flowgraph: unknown block kind")
	ErrDanglingEdge     = errors.New("flowgraph: connection references unknown block")
	ErrInvalidPort      = errors.New("flowgraph: invalid input port")
	ErrMissingInput     = errors.New("flowgraph: unconnected input port")
	ErrCycle            = errors.New("flowgraph: graph contains a cycle")
	ErrInvalidParameter = errors.New("flowgraph: invalid block parameter")
	ErrLengthMismatch   = errors.New("flowgraph: input streams differ in length")
)

// Options are graph-wide settings.
type Options struct {
	SampleRate float64 `yaml:"sample_rate"`
	Samples    int     `yaml:"samples"`
}

// BlockSpec declares one block.
type BlockSpec struct {
	ID     string         `yaml:"id"`
	Kind   string         `yaml:"kind"`
	Params map[string]any `yaml:"params"`
}

// Connection feeds the output of From into input Port of To.
// In YAML it is written as a sequence [from, to] or [from, to, port].
type Connection struct {
	From string
	To   string
	Port int
}

// UnmarshalYAML decodes the sequence form of a connection.
func (c *Connection) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) < 2 || len(value.Content) > 3 {
		return fmt.Errorf("line %d: connection must be [from, to] or [from, to, port]", value.Line)
	}

	c.From = value.Content[0].Value
	c.To = value.Content[1].Value
	c.Port = 0

	if len(value.Content) == 3 {
		port, err := strconv.Atoi(value.Content[2].Value)
		if err != nil {
			return fmt.Errorf("line %d: connection port: %w", value.Line, err)
		}

		c.Port = port
	}

	return nil
}

// MarshalYAML writes the sequence form.
func (c Connection) MarshalYAML() (any, error) {
	return []any{c.From, c.To, c.Port}, nil
}

// Graph is a parsed, not yet validated flow graph.
type Graph struct {
	Options     Options      `yaml:"options"`
	Blocks      []BlockSpec  `yaml:"blocks"`
	Connections []Connection `yaml:"connections"`
}

// Parse decodes a graph document. Unknown top-level fields are rejected.
func Parse(r io.Reader) (*Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var g Graph
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("flowgraph: decode: %w", err)
	}

	return &g, nil
}

// ParseFile reads and decodes the graph at path.
func ParseFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("flowgraph: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
