package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/logger"
	"github.com/automoto/downpour/session"
	"github.com/automoto/downpour/storage"
	"github.com/spf13/cobra"
)

var (
	flagFrames    int
	flagAutopilot bool
	flagRealtime  bool
	flagRecord    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [files...]",
	Short: "Run levels without a window",
	Long: `Step the simulation headless at the configured tick rate. The autopilot
plays unless --autopilot=false, in which case the player stands still.
Won levels advance and dead players restart after a second.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 36000, "Stop after this many frames (0 = until completed)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Let the scripted driver play")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the tick rate")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Save won levels to the run database")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	levels, err := loadLevels(args)
	if err != nil {
		return err
	}

	var opts []session.Option
	if flagAutopilot {
		opts = append(opts, session.WithAutopilot())
	}
	if flagRecord {
		store, err := storage.Open(expandHome(flagDBPath))
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, session.OnLevelWon(func(r session.LevelResult) {
			if _, err := store.SaveRun(runFromResult(r, flagAutopilot)); err != nil {
				logger.Log.Warnw("could not record run", "level", r.Name, "error", err)
			}
		}))
	}

	out := cmd.OutOrStdout()
	opts = append(opts, session.OnLevelWon(func(r session.LevelResult) {
		fmt.Fprintf(out, "won   %-16s %7.2fs  life %6.1f  deaths %d\n", r.Name, r.Elapsed, r.Life, r.Deaths)
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := session.New(levels, opts...)
	stats, err := session.NewRunner(s, cfg.C.TPS, nil).Run(ctx, flagFrames, flagRealtime)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nframes %d  levels won %d/%d  deaths %d  completed %v\n",
		stats.Frames, stats.LevelsWon, len(levels), stats.Deaths, stats.Completed)
	for kind := components.EventFootstep; kind <= components.EventLevelWon; kind++ {
		fmt.Fprintf(out, "  %-20s %d\n", kind, stats.Events[kind])
	}
	return nil
}

func runFromResult(r session.LevelResult, autopilot bool) storage.LevelRun {
	return storage.LevelRun{
		Level:      r.Name,
		LevelIndex: r.Index,
		Elapsed:    r.Elapsed,
		Frames:     r.Frames,
		Life:       r.Life,
		FirePieces: r.FirePieces,
		Deaths:     r.Deaths,
		Autopilot:  autopilot,
	}
}
