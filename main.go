package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"ballcollision/game"
	"ballcollision/physics"
	"ballcollision/scenario"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used for missing fields)")
	seed := flag.Uint64("seed", 0, "Population seed (0 = time-based)")
	regions := flag.Int("regions", 0, "Partition region count, a perfect square (overrides config)")
	workers := flag.Int("workers", -1, "Concurrent region scans, 0 = one per region (overrides config)")
	showGrid := flag.Bool("grid", false, "Show the partition grid at startup (F1 toggles)")
	flag.Parse()

	config, err := scenario.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if *regions != 0 {
		config.Regions = *regions
	}
	if *workers >= 0 {
		config.Workers = *workers
	}
	config.ShowGrid = config.ShowGrid || *showGrid

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	bodies := scenario.Population(config, scenario.NewRand(config.Seed))
	world, err := physics.NewWorld(config.Settings(), bodies)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}
	log.Printf("Simulating %d bodies in %d regions with GOMAXPROCS=%d", len(bodies), config.Regions, runtime.GOMAXPROCS(0))

	g := game.NewGame(config, world)

	ebiten.SetWindowSize(config.Width, config.Height)
	ebiten.SetWindowTitle(config.Title)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
