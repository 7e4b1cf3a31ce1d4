package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/hanmun/vocasnake/internal/config"
	"github.com/hanmun/vocasnake/internal/game"
	"github.com/hanmun/vocasnake/internal/log"
)

func main() {
	var vocabPath string
	var seed uint64
	var mute bool
	var debug bool

	flag.StringVar(&vocabPath, "vocab", "", "vocabulary CSV file (overrides config)")
	flag.Uint64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	flag.BoolVar(&mute, "mute", false, "disable sound")
	flag.BoolVar(&debug, "debug", false, "verbose logging")
	flag.Parse()

	if err := run(vocabPath, seed, mute, debug); err != nil {
		fmt.Fprintf(os.Stderr, "vocasnake: %v\n", err)
		os.Exit(1)
	}
}

func run(vocabPath string, seed uint64, mute, debug bool) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := log.New(debug)
	if err != nil {
		// Audio and gameplay do not depend on the log file.
		logger = zap.NewNop()
	}
	defer logger.Sync()

	if vocabPath == "" {
		vocabPath = settings.VocabPath
	}
	pairs := game.BuiltinVocab
	if vocabPath != "" {
		loaded, err := game.LoadCSV(vocabPath)
		switch {
		case err != nil:
			logger.Warn("vocabulary load failed, using builtin set",
				zap.String("path", vocabPath), zap.Error(err))
		case len(loaded) == 0:
			logger.Warn("vocabulary file has no usable rows, using builtin set",
				zap.String("path", vocabPath))
		default:
			pairs = loaded
		}
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cfg := game.DefaultConfig()
	state, err := game.NewState(cfg, pairs, seed, logger)
	if err != nil {
		return err
	}

	var audio *game.AudioSystem
	if !mute && !settings.Mute {
		audio, err = game.NewAudio(settings.SoundVolume)
		if err != nil {
			logger.Warn("audio init failed, continuing silent", zap.Error(err))
		}
	}

	w, h := cfg.WindowSize()
	ebiten.SetWindowTitle("VocaSnake")
	ebiten.SetWindowSize(
		int(float64(w)*settings.WindowScale),
		int(float64(h)*settings.WindowScale))

	return ebiten.RunGame(game.NewGame(state, audio, logger))
}
