package system

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

var debugOutline = color.NRGBA{R: 255, G: 0, B: 255, A: 255}

type RenderSystem struct {
	camEntity ecs.Entity
	Debug     bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw paints every sprite as a filled rectangle, ordered by render layer.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		r.camEntity = 0
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	camX, camY := 0.0, 0.0
	zoom := 1.0
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok && camComp.Zoom > 0 {
		zoom = camComp.Zoom
	}

	bounds := screen.Bounds()
	screenW, screenH := float64(bounds.Dx()), float64(bounds.Dy())

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := renderLayer(w, entities[i]), renderLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Hidden || s.Width <= 0 || s.Height <= 0 {
			continue
		}

		width, height := s.Size(t)
		width *= zoom
		height *= zoom
		cx, cy := common.WorldToScreen((t.X-camX)*zoom, (t.Y-camY)*zoom, screenW, screenH)
		x, y := float32(cx-width/2), float32(cy-height/2)

		clr := s.Color
		clr.A = uint8(float64(clr.A) * common.Clamp(s.Opacity(), 0, 1))
		vector.DrawFilledRect(screen, x, y, float32(width), float32(height), clr, false)

		if r.Debug {
			vector.StrokeRect(screen, x, y, float32(width), float32(height), 1, debugOutline, false)
		}
	}

	if r.Debug {
		drawStageDebug(w, screen)
	}
}

func drawStageDebug(w *ecs.World, screen *ebiten.Image) {
	e, ok := w.First(component.GameplayStageComponent.Kind(), component.EnemyCountComponent.Kind())
	if !ok {
		return
	}
	stage, _ := ecs.Get(w, e, component.GameplayStageComponent.Kind())
	count, _ := ecs.Get(w, e, component.EnemyCountComponent.Kind())
	line := fmt.Sprintf("wave %d (%s, %s)  enemies: %d", stage.Wave.Number, stage.Wave.Type, stage.State.Phase, count.Total())
	ebitenutil.DebugPrintAt(screen, line, 0, 16)
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
