// Package diagram models grids of command blocks and renders them as text.
package diagram

import (
	"strings"
)

// Mode is the activation mode of a command block
type Mode uint8

// Command block modes
const (
	ModeImpulse Mode = iota
	ModeRepeat
	ModeChain
)

var modeNames = map[Mode]string{
	ModeImpulse: "impulse",
	ModeRepeat:  "repeat",
	ModeChain:   "chain",
}

func (m Mode) String() string {
	return modeNames[m]
}

// CommandBlock is a single block holding a command
type CommandBlock struct {
	Mode               Mode
	Command            string
	NeedsRedstone      bool
	Conditional        bool
	Name               string
	ExecuteOnFirstTick bool
	TickDelay          int32
	TrackOutput        bool
}

func (cb *CommandBlock) String() string {
	return "{" + cb.Command + "}"
}

// Component is a chain of slots; a nil slot holds no block.
type Component struct {
	Chain  []*CommandBlock
	Height int16
}

// Diagram is an ordered list of components
type Diagram struct {
	Units []Component
}

// String renders one line per component, each block as "{command}" and each
// empty slot as "{}".
func (d *Diagram) String() string {
	var b strings.Builder
	for _, comp := range d.Units {
		for _, node := range comp.Chain {
			if node == nil {
				b.WriteString("{}")
				continue
			}
			b.WriteString(node.String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Sample returns a diagram with two impulse blocks at the end of chains of
// empty slots.
func Sample() *Diagram {
	first := make([]*CommandBlock, 10)
	first[9] = &CommandBlock{Mode: ModeImpulse, Command: "say Hello World!"}

	second := make([]*CommandBlock, 6)
	second[5] = &CommandBlock{Mode: ModeImpulse, Command: "say Hello World Again!"}

	return &Diagram{
		Units: []Component{
			{Chain: first},
			{Chain: second},
		},
	}
}
