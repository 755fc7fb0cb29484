package engine

// System is one stage of a tick
type System interface {
	Update(world *World, tick uint64)
	Priority() int // Lower values run first
}
