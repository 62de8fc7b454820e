// Package engine wraps the board, evaluator, search, and perft
// packages behind a small set of driver-facing operations, so that a
// protocol layer (UCI or otherwise) never touches board/search
// internals directly.
package engine

import (
	"fmt"
	"time"

	"github.com/b-lovro/TriglavTactician/board"
	"github.com/b-lovro/TriglavTactician/perft"
	"github.com/b-lovro/TriglavTactician/search"
)

// defaultMaxDepth bounds an otherwise-unlimited Go call (no depth, no
// time control given) so that the search loop has a ceiling.
const defaultMaxDepth = 64

// SearchLimits mirrors search.Limits at the driver boundary; kept as a
// distinct type so protocol glue doesn't need to import the search
// package just to build a request.
type SearchLimits struct {
	Depth     int
	MoveTime  time.Duration
	WTime     time.Duration
	BTime     time.Duration
	WInc      time.Duration
	BInc      time.Duration
	HaveClock bool

	// OnInfo, if set, is called once per completed iterative-deepening
	// iteration with a rendered "info ..." line.
	OnInfo search.InfoLine
}

// Engine is the sole entry point a protocol layer needs: one instance
// owns one board and the result of its last completed search.
type Engine struct {
	pos        *board.Board
	lastResult search.Result
}

// New returns an Engine positioned at the standard starting array.
func New() *Engine {
	e := &Engine{pos: board.NewStartpos()}
	e.lastResult.BestMove = board.NoMove
	return e
}

// SetStartpos resets the engine to the standard starting array.
func (e *Engine) SetStartpos() {
	e.pos = board.NewStartpos()
}

// SetFEN installs the position described by fen (placement/side/
// castling/en-passant fields; trailing halfmove/fullmove fields are
// tolerated and ignored).
func (e *Engine) SetFEN(fen string) error {
	b := board.New()
	if err := b.ParsePlacement(fen); err != nil {
		return fmt.Errorf("engine: SetFEN: %w", err)
	}
	e.pos = b
	return nil
}

// ApplyUCIMoves applies a sequence of origin-destination (+ optional
// promotion letter) moves to the current position, resolving each
// against the legal move list. It stops and returns an error at the
// first move that does not resolve.
func (e *Engine) ApplyUCIMoves(moves []string) error {
	for _, mv := range moves {
		m, err := e.pos.ParseUCIMove(mv)
		if err != nil {
			return fmt.Errorf("engine: ApplyUCIMoves: move %q: %w", mv, err)
		}
		if !e.pos.Make(m) {
			return fmt.Errorf("engine: ApplyUCIMoves: move %q rejected by Make", mv)
		}
	}
	return nil
}

// Go runs the iterative-deepening search under limits, emitting one
// InfoLine per completed iteration via limits.OnInfo, and records +
// returns the result.
func (e *Engine) Go(limits SearchLimits) search.Result {
	depth := limits.Depth
	if depth <= 0 {
		depth = defaultMaxDepth
	}

	var tcLimits search.Limits
	if limits.MoveTime > 0 {
		tcLimits.MoveTime = limits.MoveTime
	} else if limits.HaveClock {
		tcLimits.HaveClock = true
		if e.pos.SideToMove() == board.White {
			tcLimits.Remaining, tcLimits.Increment = limits.WTime, limits.WInc
		} else {
			tcLimits.Remaining, tcLimits.Increment = limits.BTime, limits.BInc
		}
	}

	tc := search.NewTimeControl(tcLimits)
	result := search.Search(e.pos, depth, tc, limits.OnInfo)
	e.lastResult = result
	return result
}

// Perft reports the leaf count and per-root-move divide breakdown at
// depth.
func (e *Engine) Perft(depth int) perft.Report {
	return perft.Divide(e.pos, depth)
}

// BestMove renders the last completed search's best move in
// <from><to>[promo] form. Returns "(none)" if no search has completed
// yet or the search found no legal move.
func (e *Engine) BestMove() string {
	if e.lastResult.BestMove == board.NoMove {
		return "(none)"
	}
	return e.lastResult.BestMove.String()
}

// Position exposes the current board for read-only driver queries
// (status reporting, perft-from-current-position, diagnostics).
func (e *Engine) Position() *board.Board {
	return e.pos
}
