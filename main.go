package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/iburimskiy/circle-of-fifths/internal/assets"
	"github.com/iburimskiy/circle-of-fifths/internal/config"
	"github.com/iburimskiy/circle-of-fifths/internal/dialog"
	"github.com/iburimskiy/circle-of-fifths/internal/game"
	"github.com/iburimskiy/circle-of-fifths/internal/logger"
	"github.com/iburimskiy/circle-of-fifths/internal/plugin"
	"github.com/iburimskiy/circle-of-fifths/internal/theme"
)

// blockSize is the largest buffer the standalone host hands the processor.
const blockSize = 512

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using environment variables", nil)
	}

	if err := run(); err != nil {
		logger.Error("circle of fifths stopped", err, nil)
		_ = dialog.Error(plugin.DefaultInfo.Name, err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Setup(os.Stderr, cfg.Log.Level); err != nil {
		return err
	}

	start := time.Now()
	reg, err := theme.NewRegistry(assets.NewRasterizer(cfg.Assets.Size))
	if err != nil {
		return err
	}
	logger.Info("diagrams ready", logger.Fields{"size": cfg.Assets.Size, "took": time.Since(start).String()})

	info := plugin.DefaultInfo
	proc := plugin.New(info, cfg, reg).CreateProcessor()
	if err := proc.Initialize(float64(cfg.Audio.SampleRate), blockSize); err != nil {
		return err
	}
	ed, err := proc.CreateEditor()
	if err != nil {
		return err
	}

	if cfg.Audio.Enabled {
		if err := startAudio(proc, cfg.Audio.SampleRate); err != nil {
			// The diagram works without sound.
			logger.Warn("audio disabled", logger.Fields{"error": err.Error()})
		}
	}

	w, h := ed.Size()
	l := ed.Limits()
	w, h = l.Clamp(w, h)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowSizeLimits(l.MinW, l.MinH, l.MaxW, l.MaxH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(info.Name)
	ebiten.SetScreenClearedEveryFrame(false)

	about := fmt.Sprintf("%s %s\n\nLeft/Right: move around the circle\nUp/Down: change mode\nShift+Up: change chord overlay", info.Name, info.Version)
	logger.Info("editor opened", logger.Fields{"width": w, "height": h})
	if err := ebiten.RunGame(game.New(ed, about)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// startAudio plays silence through the processor, the way a host would keep it running.
func startAudio(proc *plugin.Processor, rate int) error {
	sr := beep.SampleRate(rate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker: %w", err)
	}
	proc.SetActive(true)
	speaker.Play(proc.Stream(beep.Silence(-1)))
	logger.Info("audio started", logger.Fields{"sample_rate": rate})
	return nil
}
