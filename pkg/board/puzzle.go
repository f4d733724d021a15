package board

import "github.com/deckstride/deckstride/pkg/board/types"

// DefaultPuzzleName identifies the built-in layout in the records store.
const DefaultPuzzleName = "crossing-7x7"

// NewDefaultPuzzle builds the built-in 7x7 layout and its three card stacks.
// The layout is fixed so that clear times are comparable between runs.
func NewDefaultPuzzle() (*Board, []*types.Stack, error) {
	b, err := NewBoard(NewBoardOptions{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Start:  types.GridPoint{X: 0, Y: 0},
		Goal:   types.GridPoint{X: 6, Y: 6},
		Blocked: []types.GridPoint{
			{X: 2, Y: 1},
			{X: 2, Y: 2},
			{X: 2, Y: 3},
			{X: 4, Y: 3},
			{X: 4, Y: 4},
			{X: 4, Y: 5},
			{X: 1, Y: 5},
			{X: 5, Y: 1},
		},
		Warps: []types.GridPoint{
			{X: 6, Y: 0},
			{X: 0, Y: 6},
		},
	})
	if err != nil {
		return nil, nil, err
	}

	stacks := []*types.Stack{
		{
			ID: "stack-left",
			Cards: []types.Card{
				{ID: "card-footman", Kind: types.CardKindSoldier, Vectors: []types.GridVector{{DX: 0, DY: 1}}},
				{ID: "card-sidestep", Kind: types.CardKindSoldier, Vectors: []types.GridVector{{DX: 1, DY: 0}}},
				{ID: "card-lancer", Kind: types.CardKindScout, Vectors: []types.GridVector{{DX: 1, DY: 1}, {DX: -1, DY: 1}}},
			},
		},
		{
			ID: "stack-mid",
			Cards: []types.Card{
				{ID: "card-courser", Kind: types.CardKindRunner, Vectors: []types.GridVector{{DX: 1, DY: 0}, {DX: 0, DY: 1}}},
				{ID: "card-rider", Kind: types.CardKindScout, Vectors: []types.GridVector{{DX: 2, DY: 1}, {DX: 1, DY: 2}}},
				{ID: "card-gate", Kind: types.CardKindWarp},
			},
		},
		{
			ID: "stack-right",
			Cards: []types.Card{
				{ID: "card-backstep", Kind: types.CardKindSoldier, Vectors: []types.GridVector{{DX: 0, DY: -1}}},
				{ID: "card-drifter", Kind: types.CardKindWild},
				{ID: "card-vault", Kind: types.CardKindScout, Vectors: []types.GridVector{{DX: -2, DY: 1}, {DX: 2, DY: -1}}},
			},
		},
	}

	return b, stacks, nil
}
