// Package flowgraph evaluates a declarative signal-flow graph.
//
// A graph is a YAML document listing blocks and the connections between
// them, in the spirit of a GNU Radio Companion file:
//
//	options:
//	  sample_rate: 48000
//	  samples: 4096
//	blocks:
//	  - id: src
//	    kind: signal_source
//	    params: {waveform: sine, frequency: 440, amplitude: 0.5}
//	  - id: out
//	    kind: sink
//	connections:
//	  - [src, out, 0]
//
// Every stream is a block of complex samples. [Graph.Compile] checks the
// graph and orders it topologically. [Flow.Run] evaluates each block once
// and returns the samples that reached every sink.
package flowgraph
