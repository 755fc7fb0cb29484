package constants

import "time"

// Game Loop Timing
const (
	// TickDuration is the fixed simulation step consumed from the lag accumulator
	TickDuration = 10 * time.Millisecond
)

// Viewport bounds, inclusive on both ends
// Shared by player clamping, laser despawn and formation reversal
const (
	MinX uint16 = 1
	MaxX uint16 = 130
	MinY uint16 = 1
	MaxY uint16 = 42
)

// System Execution Priorities (lower runs first)
// Order is load-bearing: lasers and aliens must have moved before collisions resolve
const (
	PriorityPlayerLaser = 10
	PriorityFormation   = 20
	PriorityEnemyLaser  = 30
	PriorityCollision   = 40
)
