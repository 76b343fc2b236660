package manager

import (
	"retry-snake/game/types"

	"golang.org/x/exp/rand"
)

// maxSamples bounds rejection sampling before falling back to a scan
const maxSamples = 4096

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

// NewFoodManager creates a food manager drawing from a source seeded with seed
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Place picks a uniformly random cell not in occupied.
// It returns false only when occupied covers the whole board.
func (fm *FoodManager) Place(occupied []types.Point) (types.Point, bool) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	for i := 0; i < maxSamples; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if _, ok := taken[food]; !ok {
			return food, true
		}
	}

	// Nearly full board: collect what is left and pick among it
	free := make([]types.Point, 0, max(fm.grid.Cells()-len(taken), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
