package searcher

import (
	"math"
	"quarto/game"

	"golang.org/x/exp/rand"
)

// node owns its children; the tree is rebuilt for every decision.
type node struct {
	state    game.State
	children []*node
	trials   int
	value    float64     // Sum of backed up values, for the player to act in state
	action   game.Action // Action leading here from the parent, empty at the root
}

func newNode(state game.State, action game.Action) *node {
	return &node{state: state, action: action}
}

// expand adds one child per placement and piece pair, or per placement
// alone when the pool is empty.
func (n *node) expand() {
	places := n.state.LegalPlacements()
	pieces := n.state.LegalPieces()

	n.children = make([]*node, 0, len(places)*max(len(pieces), 1))
	for i := range places {
		place := &places[i]
		if len(pieces) == 0 {
			next := n.state
			next.Place(place.Row, place.Col)
			n.children = append(n.children, newNode(next, game.NewAction(place, nil)))
			continue
		}
		for j := range pieces {
			next := n.state
			next.Place(place.Row, place.Col)
			if !next.IsDone() {
				next.Select(pieces[j])
			}
			n.children = append(n.children, newNode(next, game.NewAction(place, &pieces[j])))
		}
	}
}

// pickChild returns the first unvisited child, or else the child with the
// highest UCB1 score.
func (n *node) pickChild() int {
	total := 0
	for i, child := range n.children {
		if child.trials == 0 {
			return i
		}
		total += child.trials
	}

	lnN := math.Log(float64(total))
	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		if score := ucb1(child.value, child.trials, lnN); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// evaluate runs one simulation through n and returns its value for the
// player to act in n.
func (n *node) evaluate(rng *rand.Rand, stats searchStats) float64 {
	var value float64
	switch {
	case n.state.IsDone():
		value = terminalValue(&n.state)
	case len(n.children) == 0:
		next := n.state
		value = playout(&next, rng)
		stats.onRollout()
		if n.trials+1 == ExpandThreshold {
			n.expand()
			stats.onExpand()
		}
	default:
		child := n.children[n.pickChild()]
		value = 1 - child.evaluate(rng, stats)
	}

	n.trials++
	n.value += value
	return value
}

// mostVisited returns the child with the most trials, the first one on ties.
func (n *node) mostVisited() *node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.trials > best.trials {
			best = child
		}
	}
	return best
}

type searchStats struct {
	onRollout func()
	onExpand  func()
}
