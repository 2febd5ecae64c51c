package flowgraph

import (
	"context"
	"fmt"
)

type node struct {
	spec    BlockSpec
	params  Params
	factory Factory
	inputs  []string // source block id per input port
}

// Flow is a validated graph in evaluation order.
type Flow struct {
	env   Env
	nodes map[string]*node
	order []string
	sinks []string
}

// Compile validates g against the built-in block kinds and sorts it
// topologically.
func (g *Graph) Compile() (*Flow, error) {
	return g.CompileWith(DefaultRegistry())
}

// CompileWith validates g against reg. Unknown kinds, bad parameters,
// dangling connections, unconnected or doubly connected ports and cycles
// are all rejected.
func (g *Graph) CompileWith(reg *Registry) (*Flow, error) {
	env := Env{SampleRate: g.Options.SampleRate, Samples: g.Options.Samples}
	if !(env.SampleRate > 0) || env.Samples <= 0 {
		return nil, fmt.Errorf("%w: sample_rate=%g samples=%d", ErrInvalidOptions, env.SampleRate, env.Samples)
	}

	nodes := make(map[string]*node, len(g.Blocks))
	declared := make([]string, 0, len(g.Blocks))

	for _, spec := range g.Blocks {
		if spec.ID == "" {
			return nil, fmt.Errorf("%w: block of kind %q has no id", ErrInvalidParameter, spec.Kind)
		}

		if _, dup := nodes[spec.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBlock, spec.ID)
		}

		factory := reg.Lookup(spec.Kind)
		if factory == nil {
			return nil, fmt.Errorf("%w: %s (block %s)", ErrUnknownKind, spec.Kind, spec.ID)
		}

		params := parseParams(spec)

		// Build once so parameter errors surface at compile time.
		blk, err := factory(params, env)
		if err != nil {
			return nil, err
		}

		nodes[spec.ID] = &node{
			spec:    spec,
			params:  params,
			factory: factory,
			inputs:  make([]string, blk.NumInputs()),
		}
		declared = append(declared, spec.ID)
	}

	outgoing := make(map[string][]string, len(nodes))
	indegree := make(map[string]int, len(nodes))

	for _, c := range g.Connections {
		if _, ok := nodes[c.From]; !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrDanglingEdge, c.From, c.To)
		}

		dst, ok := nodes[c.To]
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrDanglingEdge, c.From, c.To)
		}

		if c.Port < 0 || c.Port >= len(dst.inputs) {
			return nil, fmt.Errorf("%w: %s has %d inputs, got port %d", ErrInvalidPort, c.To, len(dst.inputs), c.Port)
		}

		if dst.inputs[c.Port] != "" {
			return nil, fmt.Errorf("%w: %s port %d is connected twice", ErrInvalidPort, c.To, c.Port)
		}

		dst.inputs[c.Port] = c.From
		outgoing[c.From] = append(outgoing[c.From], c.To)
		indegree[c.To]++
	}

	for _, id := range declared {
		for port, from := range nodes[id].inputs {
			if from == "" {
				return nil, fmt.Errorf("%w: %s port %d", ErrMissingInput, id, port)
			}
		}
	}

	// Kahn's algorithm, seeded in declaration order so the result is stable.
	queue := make([]string, 0, len(nodes))
	for _, id := range declared {
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, len(nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		order = append(order, id)
		for _, to := range outgoing[id] {
			indegree[to]--
			if indegree[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	if len(order) != len(nodes) {
		return nil, ErrCycle
	}

	var sinks []string
	for _, id := range declared {
		if nodes[id].spec.Kind == KindSink {
			sinks = append(sinks, id)
		}
	}

	return &Flow{env: env, nodes: nodes, order: order, sinks: sinks}, nil
}

// Order returns the block ids in evaluation order.
func (f *Flow) Order() []string {
	return append([]string(nil), f.order...)
}

// Sinks returns the sink block ids in declaration order.
func (f *Flow) Sinks() []string {
	return append([]string(nil), f.sinks...)
}

// Env returns the sample rate and block length of the flow.
func (f *Flow) Env() Env {
	return f.env
}

// Run evaluates every block once, in order, with freshly built block state.
// It returns the stream that reached each sink. ctx is checked between blocks.
func (f *Flow) Run(ctx context.Context) (map[string][]complex128, error) {
	streams := make(map[string][]complex128, len(f.order))

	for _, id := range f.order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n := f.nodes[id]

		blk, err := n.factory(n.params, f.env)
		if err != nil {
			return nil, fmt.Errorf("flowgraph: block %s: %w", id, err)
		}

		in := make([][]complex128, len(n.inputs))
		for port, from := range n.inputs {
			in[port] = streams[from]
		}

		out, err := blk.Process(in)
		if err != nil {
			return nil, fmt.Errorf("flowgraph: block %s: %w", id, err)
		}

		streams[id] = out
	}

	result := make(map[string][]complex128, len(f.sinks))
	for _, id := range f.sinks {
		result[id] = streams[id]
	}

	return result, nil
}

// Run compiles g with the built-in blocks and evaluates it.
func (g *Graph) Run(ctx context.Context) (map[string][]complex128, error) {
	flow, err := g.Compile()
	if err != nil {
		return nil, err
	}

	return flow.Run(ctx)
}
