package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/reflex"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

var (
	flagSimTicks     int
	flagSimReaction  int
	flagSimJitter    int
	flagSimErrorRate float64
	flagSimSeed      int64
	flagSimSave      bool
	flagSimConfig    string
	flagSimDiff      string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless scripted session",
	Long: `Run a full session without a terminal UI, driven by a scripted
player with a configurable reaction time and error rate. Useful for
balancing tier tables and deadlines.

The scripted player presses the full target pattern a fixed number of
ticks after each round starts, occasionally adding a wrong button.

Examples:
  reflex simulate
  reflex simulate --ticks 60000 --reaction 400 --error-rate 0.1
  reflex simulate --difficulty hard --sim-seed 42
  reflex simulate --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 60000, "Number of engine ticks to run")
	simulateCmd.Flags().IntVar(&flagSimReaction, "reaction", 500, "Mean reaction time in ticks")
	simulateCmd.Flags().IntVar(&flagSimJitter, "jitter", 150, "Reaction time jitter in ticks")
	simulateCmd.Flags().Float64Var(&flagSimErrorRate, "error-rate", 0.05, "Probability of pressing a wrong button")
	simulateCmd.Flags().Int64Var(&flagSimSeed, "sim-seed", 0, "Scripted player RNG seed (0 = time-based)")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the result in the sessions database")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagSimDiff, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "reflex-sim",
	})

	gameCfg, err := config.LoadReflex(flagSimConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagSimDiff))

	seed := flagSimSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	engine := reflex.New(gameCfg.Core())
	logger.Info("starting simulation",
		"ticks", flagSimTicks,
		"reaction", flagSimReaction,
		"error-rate", flagSimErrorRate,
		"seed", seed,
	)

	var (
		out       reflex.Output
		pending   bool
		pressAt   uint64
		pressMask uint8
		prevState = reflex.StateAwaitingNext
	)

	logEvery := flagSimTicks / 10
	if logEvery < 1 {
		logEvery = 1
	}

	for t := 0; t < flagSimTicks; t++ {
		in := reflex.Input{Enable: true}
		if pending && engine.TickCount() >= pressAt {
			in.Buttons = pressMask
			pending = false
		}

		out = engine.Tick(in)

		// A new round just started: schedule the scripted press.
		if prevState == reflex.StateAwaitingNext && out.State == reflex.StateAwaitingInput && !out.SessionOver {
			delay := flagSimReaction
			if flagSimJitter > 0 {
				delay += rng.Intn(2*flagSimJitter+1) - flagSimJitter
			}
			if delay < 1 {
				delay = 1
			}
			pressAt = engine.TickCount() + uint64(delay)
			pressMask = out.ActivePattern
			if rng.Float64() < flagSimErrorRate {
				pressMask |= wrongButton(rng, out.ActivePattern)
			}
			pending = true
		}
		prevState = out.State

		if (t+1)%logEvery == 0 {
			logger.Info("progress",
				"tick", engine.TickCount(),
				"score", out.Score,
				"tier", out.TierIndex+1,
				"session-left", out.SessionLeft,
			)
		}
	}

	logger.Info("simulation finished",
		"score", engine.Score(),
		"rounds-won", engine.RoundsWon(),
		"rounds-missed", engine.RoundsMissed(),
		"peak-tier", engine.PeakTier()+1,
		"session-over", engine.SessionOver(),
	)

	snap := engine.Snapshot()
	fmt.Printf("score=%d won=%d missed=%d peak-tier=%d/%d state=%s\n",
		snap.Score, snap.RoundsWon, snap.RoundsMissed,
		engine.PeakTier()+1, engine.TierCount(), snap.State)

	if flagSimSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Error("cannot open sessions database", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		_, err = store.SaveSession(storage.SessionRecord{
			Score:         int(engine.Score()),
			PeakTier:      engine.PeakTier(),
			RoundsWon:     engine.RoundsWon(),
			RoundsMissed:  engine.RoundsMissed(),
			DurationTicks: int64(engine.TickCount()),
			Player:        "sim",
		})
		if err != nil {
			logger.Error("cannot save session", "error", err)
			os.Exit(1)
		}
		logger.Info("session saved")
	}
}

// wrongButton picks a random button bit outside the pattern. The spare
// eighth button is always a valid wrong choice.
func wrongButton(rng *rand.Rand, pattern uint8) uint8 {
	var candidates []uint8
	for bit := 0; bit < 8; bit++ {
		mask := uint8(1) << bit
		if pattern&mask == 0 {
			candidates = append(candidates, mask)
		}
	}
	if len(candidates) == 0 {
		return 0
	}
	return candidates[rng.Intn(len(candidates))]
}
