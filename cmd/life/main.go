// Conway's life on a Bitmap[bool], rendered with tcell.
//
// Keys: q/Esc quit, space pauses, s steps once while paused, r reseeds.
// The world follows the terminal: a resize reallocates the bitmap and
// reseeds, since resize is destructive by contract.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bitmap"
)

type game struct {
	screen  tcell.Screen
	world   *bitmap.Bitmap[bool]
	scratch *bitmap.Bitmap[bool]
	density float64
	rng     *rand.Rand
	paused  bool
}

func newGame(density float64, seed int64) (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &game{
		screen:  screen,
		density: density,
		rng:     rand.New(rand.NewSource(seed)),
	}

	w, h := screen.Size()
	g.world, err = bitmap.NewWH(w, h, false)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	g.scratch, err = bitmap.NewWH(w, h, false)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	g.seed()
	return g, nil
}

// seed randomizes the world at the configured density
func (g *game) seed() {
	cells := g.world.Data()
	for i := range cells {
		cells[i] = g.rng.Float64() < g.density
	}
}

// resize follows the terminal dimensions. Bitmap resize discards
// content, so the world is reseeded afterwards.
func (g *game) resize(w, h int) {
	if err := g.world.ResizeWH(w, h, false); err != nil {
		log.Printf("resize to %dx%d rejected: %v", w, h, err)
		return
	}
	if err := g.scratch.ResizeWH(w, h, false); err != nil {
		log.Printf("resize to %dx%d rejected: %v", w, h, err)
		return
	}
	g.seed()
}

// step advances one generation into scratch and swaps the buffers
func (g *game) step() {
	w, h := g.world.Width(), g.world.Height()
	next := g.scratch.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := g.neighbours(x, y)
			alive := *g.world.AtUnchecked(x, y)
			next[g.scratch.Offset(x, y)] = n == 3 || (alive && n == 2)
		}
	}
	g.world, g.scratch = g.scratch, g.world
}

// neighbours counts live cells around (x, y); edges do not wrap
func (g *game) neighbours(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if alive, err := g.world.Get(x+dx, y+dy); err == nil && alive {
				count++
			}
		}
	}
	return count
}

func (g *game) draw() {
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	g.screen.Clear()
	for p, alive := range g.world.Points() {
		if alive {
			g.screen.SetContent(p.X, p.Y, '█', nil, style)
		}
	}
	g.screen.Show()
}

func main() {
	var (
		density float64
		tickMs  int
		seed    int64
	)
	flag.Float64Var(&density, "d", 0.25, "Initial live-cell density [0.0 - 1.0]")
	flag.IntVar(&tickMs, "t", 100, "Generation interval in milliseconds")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	g, err := newGame(density, seed)
	if err != nil {
		log.Fatalf("init failed: %v", err)
	}
	defer g.screen.Fini()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- g.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Duration(tickMs) * time.Millisecond)
	defer ticker.Stop()

	g.draw()
	for {
		select {
		case <-ticker.C:
			if !g.paused {
				g.step()
				g.draw()
			}
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				g.resize(w, h)
				g.screen.Sync()
				g.draw()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					g.paused = !g.paused
				case ev.Rune() == 's':
					if g.paused {
						g.step()
						g.draw()
					}
				case ev.Rune() == 'r':
					g.seed()
					g.draw()
				}
			}
		}
	}
}
