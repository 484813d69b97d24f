package config

import (
	"flag"
	"os"

	"github.com/RobsonGFerrarezi/cadastro-usuarios/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   store backend: sqlite, postgres, file or s3
//	-d string   database DSN (sqlite path or postgres connection string)
//	-f string   collection file path for the file backend
//
// Arguments are filtered through flagx.FilterArgs first so flags owned by
// other components (including the test runner) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	backend := fs.String("b", string(cfg.Backend), "store backend")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.BlobPath, "f", cfg.BlobPath, "collection file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Backend = Backend(*backend)
}
