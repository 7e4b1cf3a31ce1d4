// Command playtest-report drives the autopilot through headless games and
// prints balance statistics: rounds solved, mistakes, survival length. Used
// to sanity-check rule changes without playing by hand.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/hanmun/vocasnake/internal/game"
)

type runResult struct {
	runIndex int
	seed     uint64

	correct  int
	wrong    int
	levelUps int
	moves    int
	score    int
	level    int
	gameOver bool
}

func main() {
	var runs int
	var maxMoves int
	var seedBase uint64
	var seedStep uint64
	var toClipboard bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&maxMoves, "moves", 2000, "move cap per run")
	flag.Uint64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Uint64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&toClipboard, "clipboard", false, "copy the report to the clipboard")
	flag.Parse()

	if runs <= 0 || maxMoves <= 0 {
		fmt.Fprintln(os.Stderr, "error: -runs and -moves must be > 0")
		os.Exit(1)
	}

	results := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + uint64(i)*seedStep
		res, err := playRun(i+1, seed, maxMoves)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		results = append(results, res)
	}

	report := buildReport(results, maxMoves)
	fmt.Print(report)

	if toClipboard {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Fprintf(os.Stderr, "warning: clipboard copy failed: %v\n", err)
		}
	}
}

func playRun(runIndex int, seed uint64, maxMoves int) (runResult, error) {
	sim, err := game.NewSim(game.WithSeed(seed))
	if err != nil {
		return runResult{}, err
	}
	for sim.Stats.Moves < maxMoves && sim.State.Phase() == game.PhaseRunning {
		sim.Autopilot()
		sim.RunMoves(1)
	}
	return runResult{
		runIndex: runIndex,
		seed:     seed,
		correct:  sim.Stats.Correct,
		wrong:    sim.Stats.Wrong,
		levelUps: sim.Stats.LevelUps,
		moves:    sim.Stats.Moves,
		score:    sim.State.Score(),
		level:    sim.State.Level(),
		gameOver: sim.Stats.GameOver,
	}, nil
}

func buildReport(results []runResult, maxMoves int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Playtest Report ===\n")
	fmt.Fprintf(&b, "runs=%d move_cap=%d\n\n", len(results), maxMoves)

	var totCorrect, totWrong, totMoves, totScore int
	survived := 0
	for _, r := range results {
		fmt.Fprintf(&b, "run %d (seed %d): score=%d level=%d rounds=%d wrong=%d levelups=%d moves=%d",
			r.runIndex, r.seed, r.score, r.level, r.correct, r.wrong, r.levelUps, r.moves)
		if r.gameOver {
			fmt.Fprintf(&b, " [game over]")
		}
		fmt.Fprintln(&b)

		totCorrect += r.correct
		totWrong += r.wrong
		totMoves += r.moves
		totScore += r.score
		if !r.gameOver {
			survived++
		}
	}

	n := len(results)
	fmt.Fprintf(&b, "\n--- aggregate ---\n")
	fmt.Fprintf(&b, "avg score:    %.1f\n", float64(totScore)/float64(n))
	fmt.Fprintf(&b, "avg rounds:   %.1f\n", float64(totCorrect)/float64(n))
	fmt.Fprintf(&b, "avg moves:    %.1f\n", float64(totMoves)/float64(n))
	fmt.Fprintf(&b, "accuracy:     %s\n", accuracy(totCorrect, totWrong))
	fmt.Fprintf(&b, "survived cap: %d/%d\n", survived, n)
	return b.String()
}

// accuracy formats correct/(correct+wrong) as a percentage; "n/a" when no
// items were eaten at all.
func accuracy(correct, wrong int) string {
	total := correct + wrong
	if total == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(correct)/float64(total))
}
