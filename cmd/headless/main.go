package main

import (
	"flag"
	"log"
	"time"

	"ballcollision/physics"
	"ballcollision/scenario"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used for missing fields)")
	ticks := flag.Int("ticks", 1000, "Number of ticks to simulate")
	dt := flag.Float64("dt", 1.0/60, "Seconds per tick")
	seed := flag.Uint64("seed", 0, "Population seed (overrides config)")
	every := flag.Int("every", 100, "Log statistics every N ticks (0 = summary only)")
	flag.Parse()

	config, err := scenario.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	if *ticks < 1 || *dt <= 0 {
		log.Fatalf("ticks must be >= 1 and dt > 0 (got %d, %v)", *ticks, *dt)
	}

	bodies := scenario.Population(config, scenario.NewRand(config.Seed))
	world, err := physics.NewWorld(config.Settings(), bodies)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}
	log.Printf("Running %d ticks: %d bodies, %d regions, workers=%d", *ticks, len(bodies), config.Regions, config.Workers)

	var total physics.TickStats
	start := time.Now()

	for i := 1; i <= *ticks; i++ {
		stats, err := world.Step(*dt)
		if err != nil {
			log.Fatalf("Tick %d failed: %v", i, err)
		}

		total.BorderHits += stats.BorderHits
		total.Assigned += stats.Assigned
		total.Discovered += stats.Discovered
		total.Pairs += stats.Pairs

		if *every > 0 && i%*every == 0 {
			log.Printf("tick %d: border=%d assigned=%d found=%d pairs=%d",
				i, stats.BorderHits, stats.Assigned, stats.Discovered, stats.Pairs)
		}
	}

	elapsed := time.Since(start)
	log.Printf("Done in %v (%.1f ticks/s): border=%d found=%d pairs=%d",
		elapsed, float64(*ticks)/elapsed.Seconds(), total.BorderHits, total.Discovered, total.Pairs)
}
