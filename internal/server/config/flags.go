package config

import (
	"flag"
	"os"
	"time"

	"github.com/microfarm/accounts/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   RPC bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-g int      passcode length in digits
//	-w int      passcode validity window, minutes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-g", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.PasscodeDigits, "g", config.PasscodeDigits, "passcode length in digits")

	passcodeWindow := fs.Int("w", int(config.PasscodeWindow.Minutes()), "passcode validity window (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.PasscodeWindow = time.Duration(*passcodeWindow) * time.Minute
}
