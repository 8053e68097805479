package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"watchloop/internal/config"
	"watchloop/internal/journal"
	"watchloop/internal/replay"
)

// #region main

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	fixturePath := flag.String("fixture", "", "session fixture JSON (overrides config)")
	dbPath := flag.String("db", "", "SQLite journal path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if *fixturePath != "" {
		cfg.Fixture = *fixturePath
	}
	if *dbPath != "" {
		cfg.JournalPath = *dbPath
	}

	log := newLogger(cfg.LogLevel)
	os.Exit(run(cfg, log))
}

func run(cfg *config.Config, log zerolog.Logger) int {
	var f *replay.Fixture
	if cfg.Fixture != "" {
		loaded, err := replay.LoadFixture(cfg.Fixture)
		if err != nil {
			log.Error().Err(err).Msg("load fixture")
			return 2
		}
		f = loaded
		log.Info().Str("fixture", cfg.Fixture).Int("watches", len(f.Watches)).Msg("replaying recorded session")
	} else {
		f = builtinSample(cfg)
		log.Info().Int("hour", f.Hour).Msg("running built-in sample session")
	}

	result := replay.Run(f)

	if cfg.JournalPath != "" {
		if err := journalRun(cfg.JournalPath, f, result); err != nil {
			log.Error().Err(err).Msg("journal run")
			return 2
		}
		log.Info().Str("db", cfg.JournalPath).Msg("session journaled")
	}

	printResult(result)
	return 0
}

// #endregion main

// #region sample

// builtinSample is the demo session: three liked/neutral cooking videos and
// one barely watched, disliked clickbait video.
func builtinSample(cfg *config.Config) *replay.Fixture {
	f := &replay.Fixture{
		Description:    "built-in cooking session",
		Hour:           cfg.Hour,
		QueryWordCount: cfg.QueryWordCount,
		Watches: []replay.FixtureWatch{
			{WatchTime: 100, VideoLength: 120, VideoName: "How to make pasta carbonara", Hashtags: []string{"cooking", "pasta", "italian"}, Liked: true},
			{WatchTime: 200, VideoLength: 300, VideoName: "Italian cooking secrets from grandma", Hashtags: []string{"cooking", "italian", "recipes"}},
			{WatchTime: 180, VideoLength: 200, VideoName: "Best pasta shapes ranked by an italian chef", Hashtags: []string{"pasta", "italian", "food"}, Liked: true},
			{WatchTime: 3, VideoLength: 600, VideoName: "Clickbait garbage you wont believe", Hashtags: []string{"shocking", "viral"}, Disliked: true},
		},
	}
	if cfg.HasParentOverride() {
		override := cfg.ParentOverrideMinutes
		f.ParentOverrideMinutes = &override
	}
	return f
}

// #endregion sample

// #region journal

// journalRun persists the session outcome to the SQLite journal.
func journalRun(dbPath string, f *replay.Fixture, r replay.Result) error {
	j, err := journal.Open(dbPath)
	if err != nil {
		return err
	}
	defer j.Close()

	sessionID, err := j.BeginSession(f.Hour)
	if err != nil {
		return err
	}
	if err := j.LogBreakCheck(journal.BreakCheck{
		SessionID:      sessionID,
		AvgAttention:   r.AvgAttention,
		SessionMinutes: r.SessionMinutes,
		ShouldBreak:    r.ShouldBreak,
		BreakMinutes:   r.BreakMinutes,
	}); err != nil {
		return err
	}
	return j.LogQuery(sessionID, r.Query)
}

// #endregion journal

// #region output

func printResult(r replay.Result) {
	fmt.Println("=== GUARDRAILS ===")
	fmt.Printf("avg attention:  %.0f%%\n", r.AvgAttention*100)
	fmt.Printf("session so far: %.1f min\n", r.SessionMinutes)
	fmt.Printf("need a break:   %v\n", r.ShouldBreak)
	fmt.Printf("break would be: %.1f min\n", r.BreakMinutes)

	fmt.Println()
	fmt.Println("=== FEED ===")
	fmt.Printf("search words: %v\n", r.Query)

	fmt.Println()
	fmt.Println("=== DISLIKED ===")
	fmt.Printf("%v\n", r.Exclusions)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// #endregion output
