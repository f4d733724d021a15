package coord

import "github.com/deckstride/deckstride/pkg/board/types"

// Classify partitions move candidates into guide buckets. Pure and
// deterministic: candidates are grouped by card, and each card feeds exactly
// one bucket chosen by its kind. Wild cards are excluded entirely; they
// would highlight most of the board, which helps nobody.
func Classify(candidates []types.MoveCandidate) Buckets {
	buckets := NewBuckets()

	byCard := make(map[string][]types.MoveCandidate)
	for _, c := range candidates {
		byCard[c.CardID] = append(byCard[c.CardID], c)
	}

	for _, group := range byCard {
		if len(group) == 0 {
			continue
		}
		bucket := buckets.bucketFor(group[0])
		if bucket == nil {
			continue
		}
		for _, c := range group {
			bucket[c.Destination] = struct{}{}
		}
	}

	return buckets
}

func (b Buckets) bucketFor(c types.MoveCandidate) map[types.GridPoint]struct{} {
	switch {
	case c.Kind == types.CardKindWild:
		return nil
	case c.Kind == types.CardKindWarp:
		return b.Warp
	case c.Kind == types.CardKindRunner:
		return b.MultiStep
	case len(c.Vectors) > 1:
		return b.MultipleVector
	default:
		return b.SingleVector
	}
}

// IsSingleVector reports whether a candidate belongs to the single-vector
// class: one movement vector, one possible destination, unmistakable intent.
func IsSingleVector(c types.MoveCandidate) bool {
	return c.Kind != types.CardKindWild && c.Kind != types.CardKindWarp &&
		c.Kind != types.CardKindRunner && len(c.Vectors) <= 1
}
