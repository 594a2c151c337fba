package network

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadProblem decodes one YAML problem document from r and validates it.
// Unknown keys are rejected.
//
// Layout:
//
//	nodes:
//	  - {name: n1, capacity: 1000}
//	  - {name: n2, capacity: 55}
//	capacity:
//	  - [~, 30]
//	  - [30, ~]
//	cost:
//	  - [~, 5]
//	  - [1, ~]
//	source: n1
//	sink: n2
func LoadProblem(r io.Reader) (Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Problem{}, fmt.Errorf("%w: empty document", ErrInvalidProblem)
		}

		return Problem{}, fmt.Errorf("network: decode problem: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// LoadProblemFile reads and decodes the YAML problem stored at path.
func LoadProblemFile(path string) (Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, fmt.Errorf("network: %w", err)
	}

	return LoadProblem(bytes.NewReader(data))
}

// DefaultProblem returns the built-in seven-station railway scenario: trains
// run from n1 to n7, each station limits how many trains may pass through it
// and each track has a capacity and a per-train cost.
func DefaultProblem() Problem {
	var x *int64
	v := Int64

	return Problem{
		Nodes: []Node{
			{Name: "n1", Capacity: 1000},
			{Name: "n2", Capacity: 55},
			{Name: "n3", Capacity: 35},
			{Name: "n4", Capacity: 40},
			{Name: "n5", Capacity: 50},
			{Name: "n6", Capacity: 45},
			{Name: "n7", Capacity: 1000},
		},
		Capacity: [][]*int64{
			{x, v(30), v(45), v(25), v(30), v(20), v(40)},
			{v(30), x, v(55), v(25), v(35), v(40), v(25)},
			{v(25), v(30), x, v(45), v(75), v(30), v(40)},
			{v(15), v(10), v(25), x, v(40), v(30), v(80)},
			{v(10), v(45), v(15), v(60), x, v(60), v(75)},
			{v(10), v(30), v(45), v(30), v(55), x, v(40)},
			{v(15), v(25), v(45), v(30), v(40), v(50), x},
		},
		Cost: [][]*int64{
			{x, v(5), v(10), v(4), v(5), v(6), v(10)},
			{v(1), x, v(7), v(10), v(15), v(5), v(5)},
			{v(1), v(10), x, v(5), v(4), v(7), v(12)},
			{v(2), v(6), v(4), x, v(5), v(10), v(8)},
			{v(1), v(7), v(4), v(4), x, v(9), v(2)},
			{v(1), v(4), v(2), v(3), v(8), x, v(12)},
			{v(1), v(10), v(5), v(6), v(8), v(16), x},
		},
		Source: "n1",
		Sink:   "n7",
	}
}
