package model

import (
	"math/rand"

	"github.com/sheikhrachel/go-life/utils"
)

// spawnAt populates a position if it lies inside the grid. Pattern helpers
// clip at the edges rather than failing.
func (g *Grid) spawnAt(row Row, column Column) {
	_ = g.Populate(Coordinates{Row: row, Column: column})
}

// AddGlider stamps a glider with the top-left of its bounding box at origin.
func (g *Grid) AddGlider(origin Coordinates) {
	pattern := []Coordinates{
		{Row: 0, Column: 1},
		{Row: 1, Column: 2},
		{Row: 2, Column: 0},
		{Row: 2, Column: 1},
		{Row: 2, Column: 2},
	}

	for _, offset := range pattern {
		g.spawnAt(origin.Row+offset.Row, origin.Column+offset.Column)
	}
}

// AddBlinker stamps a horizontal three-cell blinker starting at origin.
func (g *Grid) AddBlinker(origin Coordinates) {
	for i := Column(0); i < 3; i++ {
		g.spawnAt(origin.Row, origin.Column+i)
	}
}

// Randomize populates each cell independently with the given probability.
// Cells the dice leave alone keep their current state.
func (g *Grid) Randomize(density float64) {
	for row := Row(0); row < g.height; row++ {
		for column := Column(0); column < g.width; column++ {
			if rand.Float64() < density {
				g.spawnAt(row, column)
			}
		}
	}
}

// InjectRandomLife populates some random cells to break stagnation
func (g *Grid) InjectRandomLife(count int) {
	if g.width == 0 || g.height == 0 {
		return
	}
	for i := 0; i < count; i++ {
		g.spawnAt(Row(rand.Intn(int(g.height))), Column(rand.Intn(int(g.width))))
	}
}

// SeedPatterns clears the grid and stamps a few known patterns, then adds
// random life using the configured density.
func (g *Grid) SeedPatterns(config utils.Config) {
	g.Clear()

	if g.width >= 10 && g.height >= 10 {
		// Add some gliders
		g.AddGlider(Coordinates{Row: 5, Column: 5})
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(Coordinates{Row: 5, Column: g.width - 8})
		}

		// Add oscillators
		g.AddBlinker(Coordinates{Row: g.height / 4, Column: g.width / 4})
		if g.width >= 30 {
			g.AddBlinker(Coordinates{Row: 3 * g.height / 4, Column: 3 * g.width / 4})
		}
	}

	g.Randomize(config.RandomDensity)
}
