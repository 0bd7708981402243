package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"strandsim/internal/arena"
	"strandsim/internal/combat"
	"strandsim/internal/config"
	"strandsim/internal/logging"
	"strandsim/internal/store"
	"strandsim/internal/util"
)

func main() {
	var cfgDir, out, aggression, storePath string
	var seed int64
	var n, workers int
	var duration float64
	var saveLog bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&aggression, "aggression", "", "passive, normal or aggressive (overrides sim.yaml)")
	flag.Int64Var(&seed, "seed", 0, "seed (overrides sim.yaml)")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.IntVar(&workers, "workers", 8, "batch workers")
	flag.Float64Var(&duration, "duration", 0, "run length in ms (overrides sim.yaml)")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.StringVar(&storePath, "store", "", "sqlite run history file (overrides sim.yaml)")
	flag.Parse()
	if workers < 1 {
		workers = 1
	}

	settings, err := config.LoadSettings(cfgDir)
	if err != nil {
		bootLog := logging.New("info", os.Stderr)
		bootLog.Fatal().Err(err).Msg("load settings")
	}
	log := logging.New(settings.LogLevel, os.Stderr)

	if aggression != "" {
		agg, ok := combat.ParseAggression(aggression)
		if !ok {
			log.Fatal().Str("aggression", aggression).Msg("unknown aggression")
		}
		settings.Aggression = agg
	}
	if seed != 0 {
		settings.Seed = seed
	}
	if duration > 0 {
		settings.DurationMs = duration
	}
	if storePath != "" {
		settings.Store = storePath
	}

	strandsCfg, relCfg, creaturesCfg, err := config.LoadAll(cfgDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfgDir).Msg("load config")
	}

	runs, err := store.Open(settings.Store, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", settings.Store).Msg("open run store")
	}
	defer runs.Close()
	agg := settings.Aggression.String()

	opts := arena.Options{
		Aggression:     settings.Aggression,
		TickMs:         settings.TickMs,
		LowHPThreshold: settings.LowHPThreshold,
		ChargePerTick:  settings.ChargePerTick,
		ContactDamage:  settings.ContactDamage,
		Arena:          settings.Arena(),
	}
	newWorld := func(s int64, record bool, l zerolog.Logger) *arena.World {
		o := opts
		o.Record = record
		w := arena.New(strandsCfg.Build(), relCfg.Build(), util.New(s), o, l)
		w.Creatures = creaturesCfg.Build()
		return w
	}

	if n <= 1 {
		res := newWorld(settings.Seed, saveLog, log).Run(settings.DurationMs)
		if _, err := runs.Save(settings.Seed, agg, res); err != nil {
			log.Error().Err(err).Msg("record run")
		}
		if err := os.WriteFile(out, arena.MarshalPretty(res), 0644); err != nil {
			log.Fatal().Err(err).Str("out", out).Msg("write result")
		}
		log.Info().
			Float64("duration", res.Duration).
			Int("survivors", len(res.Survivors)).
			Str("out", out).
			Msg("single simsvc finished")
		return
	}

	quiet := zerolog.Nop()
	st := runBatch(n, workers, settings.Seed, func(runSeed int64) arena.SimResult {
		res := newWorld(runSeed, false, quiet).Run(settings.DurationMs)
		if _, err := runs.Save(runSeed, agg, res); err != nil {
			log.Error().Err(err).Int64("seed", runSeed).Msg("record run")
		}
		return res
	})

	survival := map[string]float64{}
	for _, d := range strandsCfg.Strands {
		name, _ := combat.ParseName(d.Name)
		survival[string(name)] = float64(st.Survived[name]) / float64(n)
	}
	perRun := map[string]float64{}
	for k, v := range st.Ultimates {
		perRun[k] = float64(v) / float64(n)
	}

	summary := map[string]any{
		"runs":              n,
		"aggression":        agg,
		"avg_time":          st.SumT / float64(n),
		"ultimates":         st.Ultimates,
		"ultimates_per_run": perRun,
		"survival_rate":     survival,
	}
	if err := os.WriteFile(out, arena.MarshalPretty(summary), 0644); err != nil {
		log.Fatal().Err(err).Str("out", out).Msg("write summary")
	}
	if hist, err := runs.Stats(agg); err == nil {
		log.Info().
			Int64("stored", hist.Runs).
			Float64("avg_duration", hist.AvgDuration).
			Float64("avg_survivors", hist.AvgSurvivors).
			Msg("run history")
	}
	log.Info().Int("runs", n).Str("out", filepath.Base(out)).Msg("batch done")
}
