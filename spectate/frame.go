package spectate

import (
	"retry-snake/game/manager"
	"retry-snake/game/types"
)

// Cell is one board coordinate on the wire
type Cell struct {
	X int `msgpack:"x"`
	Y int `msgpack:"y"`
}

// Frame is the msgpack payload sent to spectators after every change
type Frame struct {
	Seq         uint64 `msgpack:"seq"`
	Width       int    `msgpack:"w"`
	Height      int    `msgpack:"h"`
	Snake       []Cell `msgpack:"snake"`
	Food        Cell   `msgpack:"food"`
	State       string `msgpack:"state"`
	Score       int    `msgpack:"score"`
	Failures    int    `msgpack:"failures"`
	MaxFailures int    `msgpack:"max_failures"`
	Speed       string `msgpack:"speed"`
	Message     string `msgpack:"msg,omitempty"`
}

func toCells(points []types.Point) []Cell {
	cells := make([]Cell, len(points))
	for i, p := range points {
		cells[i] = Cell{X: p.X, Y: p.Y}
	}
	return cells
}

func (f *Frame) setStatus(st manager.Status) {
	f.State = st.State.String()
	f.Score = st.Score
	f.Failures = st.Failures
	f.MaxFailures = st.MaxFailures
	f.Speed = st.Speed.String()
	f.Message = st.Message()
}
