package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChord(t *testing.T) {
	type step struct {
		down bool
		key  Key
		fire bool
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "modifier then trigger fires once",
			steps: []step{
				{true, "LeftControl", false},
				{true, "Z", true},
				{true, "Z", false},
			},
		},
		{
			name: "trigger without modifier",
			steps: []step{
				{true, "Z", false},
				{false, "Z", false},
				{true, "Z", false},
			},
		},
		{
			name: "modifier after trigger does not fire",
			steps: []step{
				{true, "Z", false},
				{true, "LeftControl", false},
			},
		},
		{
			name: "release trigger re-arms",
			steps: []step{
				{true, "LeftControl", false},
				{true, "Z", true},
				{false, "Z", false},
				{true, "Z", true},
			},
		},
		{
			name: "release modifier re-arms",
			steps: []step{
				{true, "LeftControl", false},
				{true, "Z", true},
				{false, "LeftControl", false},
				{false, "Z", false},
				{true, "LeftControl", false},
				{true, "Z", true},
			},
		},
		{
			name: "modifier re-pressed while trigger held",
			steps: []step{
				{true, "LeftControl", false},
				{true, "Z", true},
				{false, "LeftControl", false},
				{true, "LeftControl", false},
				{true, "Z", false},
				{true, "Z", false},
			},
		},
		{
			name: "trigger held before modifier repeats",
			steps: []step{
				{true, "Z", false},
				{true, "LeftControl", false},
				{true, "Z", false},
			},
		},
		{
			name: "switching modifiers keeps chord active",
			steps: []step{
				{true, "LeftControl", false},
				{true, "Z", true},
				{true, "RightControl", false},
				{false, "LeftControl", false},
				{true, "Z", false},
			},
		},
		{
			name: "other key is ignored",
			steps: []step{
				{true, "LeftControl", false},
				{true, "Y", false},
				{true, "Z", true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChord("Z", "LeftControl", "RightControl")
			for i, s := range tt.steps {
				if s.down {
					assert.Equal(t, s.fire, c.Down(s.key), "step %d: down %s", i, s.key)
				} else {
					c.Up(s.key)
				}
			}
		})
	}
}

func TestChord_Reset(t *testing.T) {
	c := NewChord("Z", "LeftControl")
	c.Down("LeftControl")
	assert.True(t, c.Down("Z"))
	assert.True(t, c.active())

	c.Reset()
	assert.False(t, c.active())
	assert.False(t, c.held("LeftControl"))
	assert.False(t, c.held("Z"))

	assert.False(t, c.Down("Z"))
	c.Up("Z")
	c.Down("LeftControl")
	assert.True(t, c.Down("Z"))
}
