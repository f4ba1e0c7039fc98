package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	d := Sample()
	assert.Len(t, d.Units, 2)
	assert.Equal(t,
		"{}{}{}{}{}{}{}{}{}{say Hello World!}\n{}{}{}{}{}{say Hello World Again!}\n",
		d.String())
}

func TestDiagramString(t *testing.T) {
	testCases := []struct {
		In  *Diagram
		Out string
	}{
		{&Diagram{}, ""},
		{&Diagram{Units: []Component{{}}}, "\n"},
		{
			&Diagram{Units: []Component{
				{Chain: []*CommandBlock{{Mode: ModeRepeat, Command: "tp @p 0 0 0"}, nil}},
				{Chain: []*CommandBlock{nil, {Mode: ModeChain, Command: "say hi", Conditional: true}}},
			}},
			"{tp @p 0 0 0}{}\n{}{say hi}\n",
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].In.String())
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "impulse", ModeImpulse.String())
	assert.Equal(t, "repeat", ModeRepeat.String())
	assert.Equal(t, "chain", ModeChain.String())
}
