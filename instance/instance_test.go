package instance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeDist(t *testing.T) {
	a := &Node{X: 0, Y: 0}
	b := &Node{X: 3, Y: 4}
	assert.InDelta(t, 5.0, a.Dist(b), 1e-9)
	assert.InDelta(t, 5.0, b.Dist(a), 1e-9)
	assert.Zero(t, a.Dist(a))
}

func TestNodeDistNegativeCoordinates(t *testing.T) {
	a := &Node{X: -5, Y: -5}
	b := &Node{X: 5, Y: 5}
	assert.InDelta(t, 10*math.Sqrt2, a.Dist(b), 1e-9)
}

func TestInstanceDepot(t *testing.T) {
	inst := mustParse(t, cleanInstance)
	depot := inst.Depot()
	require.NotNil(t, depot)
	assert.Equal(t, 0, depot.ID)
	assert.Same(t, inst.Nodes[0], depot)
}

func TestInstanceNodeByID(t *testing.T) {
	inst := mustParse(t, cleanInstance)
	n := inst.NodeByID(1)
	require.NotNil(t, n)
	assert.Equal(t, 45, n.X)
	assert.Nil(t, inst.NodeByID(99))
}

func TestInstanceIsPDP(t *testing.T) {
	plain := mustParse(t, cleanInstance)
	assert.False(t, plain.IsPDP())

	pdp := mustParse(t, "10 50\n1 0 0 0 0 9 0 0 2\n2 1 1 5 0 9 1 1 0\n")
	assert.True(t, pdp.IsPDP())
}
