package search

import (
	"fmt"
	"strings"

	"github.com/b-lovro/TriglavTactician/board"
)

// aspirationDelta is the narrow window seeded from the previous
// iteration's score.
const aspirationDelta = 50

// fullWindow is the widened window a failed aspiration probe retries
// with.
const fullWindow = 50000

// Result is what one Search call returns to a driver: everything it
// needs to report a "bestmove" line and to answer later BestMove
// queries.
type Result struct {
	BestMove board.Move
	Score    int
	Depth    int
	Nodes    uint64
}

// InfoLine is called once per completed iterative-deepening iteration
// with a fully rendered "info ..." line.
type InfoLine func(line string)

// Search runs the iterative-deepening/aspiration-window driver to
// maxDepth (or until the time control polled by Context expires),
// operating on a private copy of pos so the caller's board is left
// untouched.
func Search(pos *board.Board, maxDepth int, tc *TimeControl, onInfo InfoLine) Result {
	working := *pos
	ctx := NewContext(tc)

	alpha, beta := -fullWindow, fullWindow
	best := Result{BestMove: board.NoMove}

	for depth := 1; depth <= maxDepth; depth++ {
		if tc.expired() {
			break
		}

		score := ctx.negamax(&working, alpha, beta, depth)

		if ctx.timedOut {
			break
		}

		if score <= alpha || score >= beta {
			alpha, beta = -fullWindow, fullWindow
			score = ctx.negamax(&working, alpha, beta, depth)
			if ctx.timedOut {
				break
			}
		}

		pv := ctx.PV()
		best = Result{
			BestMove: pvBestMove(pv),
			Score:    score,
			Depth:    depth,
			Nodes:    ctx.nodes,
		}

		if onInfo != nil {
			onInfo(renderInfoLine(score, depth, ctx.nodes, pv))
		}

		alpha, beta = score-aspirationDelta, score+aspirationDelta
	}

	return best
}

func pvBestMove(pv []board.Move) board.Move {
	if len(pv) == 0 {
		return board.NoMove
	}
	return pv[0]
}

func renderInfoLine(score, depth int, nodes uint64, pv []board.Move) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "info score cp %d depth %d nodes %d pv", score, depth, nodes)
	for _, m := range pv {
		sb.WriteByte(' ')
		sb.WriteString(m.String())
	}
	return sb.String()
}
