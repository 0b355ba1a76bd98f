//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"seat-ca/internal/app"
	"seat-ca/internal/core"
	"seat-ca/internal/logging"
	_ "seat-ca/internal/sims/seats"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.New("info", os.Stderr)

	sim, err := core.New(cfg.Sim, cfg.SimParams())
	if err != nil {
		logger.Fatal().Err(err).Str("sim", cfg.Sim).Msg("cannot build simulation")
	}

	game := app.New(sim, cfg)
	size := sim.Size()
	logger.Info().Str("sim", sim.Name()).Int("w", size.W).Int("h", size.H).Msg("starting viewer")

	ebiten.SetWindowTitle("seat-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUD, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("viewer stopped")
	}
}
