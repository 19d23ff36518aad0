package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Bodies = 200
	cfg.Rows = 10
	cfg.Cols = 10
	cfg.World.Width = 100
	cfg.World.Height = 100
	cfg.QueryDistance = 5
	cfg.MaxSpeed = 30
	return cfg
}

func TestSimulationBodiesStayInBound(t *testing.T) {
	cfg := testConfig()
	sim := NewSimulation(cfg, zap.NewNop())
	require.Equal(t, cfg.Bodies, sim.grid.BodyCount())

	bound := sim.grid.Bound()
	var neighbors []*Body
	for tick := 0; tick < 500; tick++ {
		neighbors = sim.step(cfg.TickInterval.Seconds(), neighbors)
	}

	require.Equal(t, cfg.Bodies, sim.grid.BodyCount())
	for _, body := range sim.bodies {
		require.True(t, bound.Contains(body.Pos), "body %s escaped to %+v", body.ID, body.Pos)
	}
}

func TestSimulationDeterministicSeed(t *testing.T) {
	a := NewSimulation(testConfig(), zap.NewNop())
	b := NewSimulation(testConfig(), zap.NewNop())

	require.Equal(t, len(a.bodies), len(b.bodies))
	for i := range a.bodies {
		require.Equal(t, a.bodies[i].Pos, b.bodies[i].Pos)
		require.Equal(t, a.bodies[i].Vel, b.bodies[i].Vel)
	}
}
