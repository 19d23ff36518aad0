package main

import (
	"context"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spatialgo/spatial"
)

// Body is one simulated entity. The grid holds *Body handles; ownership is
// shared between the grid and the simulation's own body list.
type Body struct {
	ID  uuid.UUID
	Pos spatial.Vector2[float64]
	Vel spatial.Vector2[float64]
}

func bodyPosition(b *Body) spatial.Vector2[float64] {
	return b.Pos
}

// Simulation integrates bodies over a fixed-rate tick loop and runs the two
// proximity queries against the grid every tick.
type Simulation struct {
	cfg  Config
	log  *zap.Logger
	grid *spatial.Grid[float64, Body]

	bodies []*Body
	cells  []*spatial.Cell[Body]
	rng    *rand.Rand

	// Counters read by the reporter goroutine.
	ticks       atomic.Int64
	relocations atomic.Int64
	nearPairs   atomic.Int64
	tickNanos   atomic.Int64
}

func NewSimulation(cfg Config, log *zap.Logger) *Simulation {
	bound := spatial.NewRect(
		spatial.Vector2[float64]{},
		spatial.Vector2[float64]{X: cfg.World.Width, Y: cfg.World.Height},
	)
	s := &Simulation{
		cfg:  cfg,
		log:  log,
		grid: spatial.NewGrid(bound, cfg.Rows, cfg.Cols, bodyPosition),
		rng:  rand.New(rand.NewSource(int64(xxhash.Sum64String(cfg.Seed)))),
	}
	s.spawn()
	return s
}

func (s *Simulation) spawn() {
	s.bodies = make([]*Body, 0, s.cfg.Bodies)
	s.cells = make([]*spatial.Cell[Body], 0, s.cfg.Bodies)
	for i := 0; i < s.cfg.Bodies; i++ {
		speed := s.cfg.MaxSpeed * (0.2 + 0.8*s.rng.Float64())
		angle := 2 * math.Pi * s.rng.Float64()
		body := &Body{
			ID: uuid.New(),
			Pos: spatial.Vector2[float64]{
				X: s.rng.Float64() * s.cfg.World.Width,
				Y: s.rng.Float64() * s.cfg.World.Height,
			},
			Vel: spatial.Vector2[float64]{X: speed * math.Cos(angle), Y: speed * math.Sin(angle)},
		}
		s.bodies = append(s.bodies, body)
		s.cells = append(s.cells, s.grid.AddBody(body))
	}
	s.log.Info("spawned bodies",
		zap.Int("bodies", s.grid.BodyCount()),
		zap.Int("rows", s.grid.Rows()),
		zap.Int("cols", s.grid.Cols()),
		zap.Float64("cell_width", s.grid.CellSize().X),
		zap.Float64("cell_height", s.grid.CellSize().Y),
	)
}

// Run drives the tick loop until the configured tick count is reached or ctx
// is canceled.
func (s *Simulation) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	neighbors := make([]*Body, 0, 64)
	for tick := 0; tick < s.cfg.Ticks; tick++ {
		select {
		case <-ctx.Done():
			s.log.Info("simulation interrupted", zap.Int("tick", tick))
			return ctx.Err()
		case <-ticker.C:
		}
		neighbors = s.step(s.cfg.TickInterval.Seconds(), neighbors)
	}
	s.log.Info("simulation finished", zap.Int("ticks", s.cfg.Ticks))
	return nil
}

// step advances every body, relocates the moved ones and issues the proximity
// queries. It reuses the caller's neighbor buffer across ticks.
func (s *Simulation) step(dt float64, neighbors []*Body) []*Body {
	if len(s.bodies) == 0 {
		return neighbors
	}
	start := time.Now()

	moved := 0
	for i, body := range s.bodies {
		s.integrate(body, dt)
		next := s.grid.UpdateBodyCell(body, s.cells[i])
		if next != s.cells[i] {
			s.cells[i] = next
			moved++
		}
	}

	pairs := s.grid.QueryDistancePair(s.cfg.QueryDistance)

	// Spot-check a single body's neighborhood with the per-body query.
	probe := s.bodies[s.rng.Intn(len(s.bodies))]
	row, col := s.grid.CellIndex(probe)
	neighbors = s.grid.QueryDistanceBuf(probe, row, col, s.cfg.QueryDistance, neighbors)

	s.ticks.Add(1)
	s.relocations.Add(int64(moved))
	s.nearPairs.Store(int64(pairs.Len()))
	s.tickNanos.Store(int64(time.Since(start)))

	s.log.Debug("tick",
		zap.Int("moved", moved),
		zap.Int("pairs", pairs.Len()),
		zap.String("probe", probe.ID.String()),
		zap.Int("probe_neighbors", len(neighbors)),
	)
	return neighbors
}

// integrate advances one body and reflects it off the world edges so its
// position always stays strictly inside the grid bound.
func (s *Simulation) integrate(body *Body, dt float64) {
	body.Pos = body.Pos.Add(body.Vel.Scale(dt))

	if body.Pos.X < 0 {
		body.Pos.X = -body.Pos.X
		body.Vel.X = -body.Vel.X
	}
	if body.Pos.Y < 0 {
		body.Pos.Y = -body.Pos.Y
		body.Vel.Y = -body.Vel.Y
	}
	// The right and bottom edges belong to no cell, so reflect just short of
	// them.
	maxX := s.cfg.World.Width * (1 - 1e-12)
	maxY := s.cfg.World.Height * (1 - 1e-12)
	if body.Pos.X > maxX {
		body.Pos.X = 2*maxX - body.Pos.X
		body.Vel.X = -body.Vel.X
	}
	if body.Pos.Y > maxY {
		body.Pos.Y = 2*maxY - body.Pos.Y
		body.Vel.Y = -body.Vel.Y
	}
}

// Report periodically logs aggregate simulation stats until ctx is canceled.
func (s *Simulation) Report(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.ReportEvery)
	defer ticker.Stop()

	lastTicks := int64(0)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		ticks := s.ticks.Load()
		s.log.Info("stats",
			zap.Int64("ticks", ticks),
			zap.Int64("ticks_per_report", ticks-lastTicks),
			zap.Int64("relocations", s.relocations.Load()),
			zap.Int64("near_pairs", s.nearPairs.Load()),
			zap.Duration("tick_duration", time.Duration(s.tickNanos.Load())),
		)
		lastTicks = ticks
	}
}
