// Command uci is a thin protocol loop: it accepts UCI-style text
// commands over stdin and drives an engine.Engine, with no chess logic
// of its own.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/b-lovro/TriglavTactician/engine"
)

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	eng := engine.New()

	fmt.Println("id name TriglavTactician")
	fmt.Println("id author the engine module")
	fmt.Println("uciok")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)

		switch parts[0] {
		case "quit":
			return
		case "uci":
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			eng = engine.New()
		case "position":
			handlePosition(eng, parts[1:])
		case "go":
			handleGo(eng, parts[1:])
		case "perft":
			if len(parts) < 2 {
				continue
			}
			handlePerft(eng, atoi(parts[1]))
		case "stop":
			// Cooperative cancellation happens via the time control's
			// deadline; there is no separate async stop signal to wire
			// here without introducing concurrency the core does not have.
		}
	}
}

func handlePosition(eng *engine.Engine, args []string) {
	if len(args) == 0 {
		return
	}

	var movesStart int
	switch args[0] {
	case "startpos":
		eng.SetStartpos()
		movesStart = 1
	case "fen":
		idx := indexOf(args, "moves")
		end := len(args)
		if idx != -1 {
			end = idx
		}
		fen := strings.Join(args[1:end], " ")
		if err := eng.SetFEN(fen); err != nil {
			fmt.Fprintf(os.Stderr, "position fen: %v\n", err)
			return
		}
		movesStart = end
	default:
		return
	}

	if movesStart < len(args) && args[movesStart] == "moves" {
		if err := eng.ApplyUCIMoves(args[movesStart+1:]); err != nil {
			fmt.Fprintf(os.Stderr, "position moves: %v\n", err)
		}
	}
}

func handleGo(eng *engine.Engine, args []string) {
	var limits engine.SearchLimits
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				limits.Depth = atoi(args[i+1])
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				limits.MoveTime = time.Duration(atoi(args[i+1])) * time.Millisecond
				i++
			}
		case "wtime":
			if i+1 < len(args) {
				limits.WTime = time.Duration(atoi(args[i+1])) * time.Millisecond
				limits.HaveClock = true
				i++
			}
		case "btime":
			if i+1 < len(args) {
				limits.BTime = time.Duration(atoi(args[i+1])) * time.Millisecond
				limits.HaveClock = true
				i++
			}
		case "winc":
			if i+1 < len(args) {
				limits.WInc = time.Duration(atoi(args[i+1])) * time.Millisecond
				i++
			}
		case "binc":
			if i+1 < len(args) {
				limits.BInc = time.Duration(atoi(args[i+1])) * time.Millisecond
				i++
			}
		}
	}

	limits.OnInfo = func(line string) { fmt.Println(line) }
	res := eng.Go(limits)
	fmt.Printf("bestmove %s\n", bestMoveText(res.BestMove.String()))
}

func bestMoveText(m string) string {
	if m == "" {
		return "(none)"
	}
	return m
}

func handlePerft(eng *engine.Engine, depth int) {
	report := eng.Perft(depth)
	for _, e := range report.Entries {
		fmt.Printf("%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Printf("Total: %d\n", report.Total)
}

func indexOf(parts []string, target string) int {
	for i, p := range parts {
		if p == target {
			return i
		}
	}
	return -1
}
