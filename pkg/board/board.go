package board

import (
	"fmt"

	"github.com/deckstride/deckstride/pkg/board/types"
	"github.com/solarlune/resolv"
)

const (
	// DefaultWidth and DefaultHeight are the standard puzzle dimensions.
	DefaultWidth  = 7
	DefaultHeight = 7
)

// Board is the static puzzle layout: the grid, blocked cells, warp pads and
// the goal. The cell grid is backed by a resolv space with one tagged object
// per non-plain cell.
type Board struct {
	width  int
	height int
	space  *resolv.Space
	cells  map[types.GridPoint]*resolv.Object
	start  types.GridPoint
	goal   types.GridPoint
	warps  []types.GridPoint
}

type NewBoardOptions struct {
	Width   int
	Height  int
	Start   types.GridPoint
	Goal    types.GridPoint
	Blocked []types.GridPoint
	Warps   []types.GridPoint
}

func NewBoard(opts NewBoardOptions) (*Board, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", opts.Width, opts.Height)
	}

	b := &Board{
		width:  opts.Width,
		height: opts.Height,
		space:  resolv.NewSpace(opts.Width, opts.Height, 1, 1),
		cells:  make(map[types.GridPoint]*resolv.Object),
		start:  opts.Start,
		goal:   opts.Goal,
		warps:  append([]types.GridPoint{}, opts.Warps...),
	}

	for _, p := range opts.Blocked {
		if err := b.addCell(p, types.CellTagBlocked); err != nil {
			return nil, err
		}
	}
	if err := b.addCell(opts.Goal, types.CellTagGoal); err != nil {
		return nil, err
	}
	for _, p := range opts.Warps {
		if err := b.addCell(p, types.CellTagWarp); err != nil {
			return nil, err
		}
	}

	if !b.Traversable(opts.Start) {
		return nil, fmt.Errorf("start cell %s is not traversable", opts.Start)
	}
	if !b.Traversable(opts.Goal) {
		return nil, fmt.Errorf("goal cell %s is not traversable", opts.Goal)
	}

	return b, nil
}

func (b *Board) addCell(p types.GridPoint, tag string) error {
	if !b.OnBoard(p) {
		return fmt.Errorf("cell %s is outside the %dx%d board", p, b.width, b.height)
	}
	if _, ok := b.cells[p]; ok {
		return fmt.Errorf("cell %s is already tagged", p)
	}
	obj := resolv.NewObject(float64(p.X), float64(p.Y), 1, 1, tag)
	b.space.Add(obj)
	b.cells[p] = obj
	return nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Start is the pawn's initial cell.
func (b *Board) Start() types.GridPoint { return b.start }

// Goal is the cell that clears the puzzle.
func (b *Board) Goal() types.GridPoint { return b.goal }

// WarpPads returns the warp pad cells.
func (b *Board) WarpPads() []types.GridPoint {
	return append([]types.GridPoint{}, b.warps...)
}

// OnBoard reports whether the point lies within the grid.
func (b *Board) OnBoard(p types.GridPoint) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// Traversable reports whether the pawn may occupy the cell.
func (b *Board) Traversable(p types.GridPoint) bool {
	if !b.OnBoard(p) {
		return false
	}
	obj, ok := b.cells[p]
	if !ok {
		return true
	}
	return !obj.HasTags(types.CellTagBlocked)
}

// IsGoal reports whether the cell is the goal.
func (b *Board) IsGoal(p types.GridPoint) bool {
	obj, ok := b.cells[p]
	return ok && obj.HasTags(types.CellTagGoal)
}

// IsWarpPad reports whether the cell is a warp pad.
func (b *Board) IsWarpPad(p types.GridPoint) bool {
	obj, ok := b.cells[p]
	return ok && obj.HasTags(types.CellTagWarp)
}

// IsBlocked reports whether the cell is blocked.
func (b *Board) IsBlocked(p types.GridPoint) bool {
	obj, ok := b.cells[p]
	return ok && obj.HasTags(types.CellTagBlocked)
}
