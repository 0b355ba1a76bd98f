//go:build ebiten

package ui

import (
	"image/color"

	"seat-ca/internal/core"
	"seat-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type changeProvider interface {
	Changed() []bool
}

var changeTint = color.RGBA{R: 250, G: 220, B: 60, A: 140}

// Overlay highlights the cells that flipped during the last generation.
type Overlay struct {
	sim         core.Sim
	scale       int
	showChanges bool
	painter     *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{
		sim:     sim,
		scale:   scale,
		painter: render.NewGridPainter(size.W, size.H),
	}
}

// Update toggles the change mask on key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showChanges = !o.showChanges
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showChanges {
		return
	}
	provider, ok := o.sim.(changeProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	o.painter.BlitMask(screen, provider.Changed(), changeTint, scale)
}
