// @focus: #constants { gameplay }
package constants

// Player
const (
	// PlayerMaxHealth is the starting health of every life
	PlayerMaxHealth = 3

	// PlayerStepX is the horizontal distance of one move
	PlayerStepX = 3

	// PlayerLaserCadence is ticks between player laser steps
	PlayerLaserCadence = 2

	// PlayerLaserLift places the laser origin this many rows above the ship tip
	PlayerLaserLift = 2
)

// Enemy Fire
const (
	// EnemyLaserCadence is ticks between enemy laser steps
	EnemyLaserCadence = 4

	// EnemyFireInterval is the minimum number of ticks between two enemy shots
	EnemyFireInterval = 30

	// EnemyFireChance is the probability that a candidate alien fires on an eligible tick
	EnemyFireChance = 0.3

	// MaxEnemyLasers caps enemy lasers in flight and the nearest-candidate list size
	MaxEnemyLasers = 4
)

// Formation Movement
const (
	// AlienStepX is the horizontal distance of one row step
	AlienStepX = 2

	// AlienStepY is the vertical distance of one descent
	AlienStepY = 1
)

// SpeedTier maps a minimum alien count to the formation cadence in ticks
type SpeedTier struct {
	MinAliens int
	Cadence   uint64
}

// SpeedTiers is ordered from the largest threshold down; the first match wins
var SpeedTiers = [...]SpeedTier{
	{MinAliens: 50, Cadence: 100},
	{MinAliens: 40, Cadence: 80},
	{MinAliens: 30, Cadence: 50},
	{MinAliens: 20, Cadence: 20},
	{MinAliens: 10, Cadence: 5},
	{MinAliens: 5, Cadence: 3},
	{MinAliens: 2, Cadence: 2},
	{MinAliens: 0, Cadence: 1},
}
