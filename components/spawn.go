package components

import (
	"github.com/lixenwraith/invaders/asset"
	"github.com/lixenwraith/invaders/sprite"
)

// Spawn instantiates tpl at every origin and wraps each instance with build
// Shared by alien rows and bunkers
func Spawn[T any](tpl sprite.Template, origins []asset.Point, build func([]sprite.Cell) T) []T {
	out := make([]T, len(origins))
	for i, o := range origins {
		out[i] = build(tpl.At(o.X, o.Y))
	}
	return out
}
