package component

const (
	LayerBackground = iota
	LayerPropulsion
	LayerEnemy
	LayerProjectile
	LayerSpaceship
	LayerEffect
)

// RenderLayer orders drawing; higher indices are drawn later.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
