package config

import (
	"flag"
	"os"
	"time"

	"github.com/dentinhoapp/dentinho/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the advice service
//	-q string   base URL of the quiz service
//	-t string   base URL of the time service
//	-z string   IANA time zone for the time service
//	-d string   local database path/DSN
//	-i int      remote request timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-q", "-t", "-z", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AdviceBaseURL, "a", cfg.AdviceBaseURL, "base URL of the advice service")
	fs.StringVar(&cfg.QuizBaseURL, "q", cfg.QuizBaseURL, "base URL of the quiz service")
	fs.StringVar(&cfg.TimeBaseURL, "t", cfg.TimeBaseURL, "base URL of the time service")
	fs.StringVar(&cfg.TimeZone, "z", cfg.TimeZone, "IANA time zone for the time service")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local database path")
	requestTimeout := fs.Int("i", int(cfg.RequestTimeout.Seconds()), "remote request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
