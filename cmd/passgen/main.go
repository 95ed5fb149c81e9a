// Command passgen generates passwords, scores them and mints API tokens
// from the command line.
//
// Usage:
//
//	passgen [-length 16] [-count 1] [-lower] [-upper] [-digits] [-symbols] [-x] [-strength]
//	passgen check <password>
//	passgen token -subject <name> [-ttl $AUTH_TOKEN_TTL]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/strength"
)

var errAuthSecretMissing = errors.New("AUTH_SECRET is not set")

// Config holds the parsed generate flags.
type Config struct {
	Options      crypto.GeneratorOptions
	Count        int
	ShowStrength bool
}

// ParseFlags registers and parses the generate flags on fs.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Options: crypto.DefaultOptions()}
	o := &cfg.Options

	fs.IntVar(&o.Length, "length", crypto.DefaultLength, "Password length (4-128)")
	fs.IntVar(&o.Length, "l", crypto.DefaultLength, "Password length (shorthand)")
	fs.BoolVar(&o.Lowercase, "lower", true, "Include lowercase letters")
	fs.BoolVar(&o.Uppercase, "upper", true, "Include uppercase letters")
	fs.BoolVar(&o.Numbers, "digits", true, "Include digits (0-9)")
	fs.BoolVar(&o.Numbers, "n", true, "Include digits (shorthand)")
	fs.BoolVar(&o.Symbols, "symbols", true, "Include special symbols")
	fs.BoolVar(&o.Symbols, "s", true, "Include symbols (shorthand)")
	fs.BoolVar(&o.ExcludeAmbiguous, "exclude-ambiguous", false, "Exclude look-alike characters (l, o, I, O, 0, 1)")
	fs.BoolVar(&o.ExcludeAmbiguous, "x", false, "Exclude look-alike characters (shorthand)")
	fs.IntVar(&cfg.Count, "count", 1, "Number of passwords to generate")
	fs.IntVar(&cfg.Count, "c", 1, "Number of passwords (shorthand)")
	fs.BoolVar(&cfg.ShowStrength, "strength", false, "Print the strength assessment of each password")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Generate produces cfg.Count passwords. Deselecting every character type is
// rejected here instead of relying on the generator's fallback pool.
func Generate(cfg Config) ([]string, error) {
	if !cfg.Options.HasCharacterTypes() {
		return nil, crypto.ErrNoCharacterTypes
	}

	count := max(cfg.Count, 1)
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := crypto.Generate(cfg.Options)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

func formatAssessment(a strength.Assessment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d/100)", a.Label, a.Score)
	for _, f := range a.Feedback {
		fmt.Fprintf(&b, "\n  - %s", f)
	}
	return b.String()
}

func runGenerate(args []string, stdout io.Writer) error {
	cfg, err := ParseFlags(flag.NewFlagSet("passgen", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	passwords, err := Generate(cfg)
	if err != nil {
		return err
	}

	for _, pw := range passwords {
		fmt.Fprintln(stdout, pw)
		if cfg.ShowStrength {
			fmt.Fprintln(stdout, "  "+formatAssessment(strength.Assess(pw)))
		}
	}
	return nil
}

func runCheck(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: passgen check <password>")
	}

	pw := args[0]
	est := strength.Estimate(pw)
	fmt.Fprintln(stdout, formatAssessment(strength.Assess(pw)))
	fmt.Fprintf(stdout, "Estimated crack time: %s (zxcvbn score %d/4)\n", est.CrackTime, est.Score)
	return nil
}

func runToken(args []string, stdout io.Writer, getenv func(string) string) error {
	cfg, err := config.LoadFrom(getenv)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("subject", "", "API client name")
	ttl := fs.Duration("ttl", cfg.AuthTokenTTL, "Token lifetime (defaults to AUTH_TOKEN_TTL)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if cfg.AuthSecret == "" {
		return errAuthSecretMissing
	}

	token, err := crypto.GenerateToken(*subject, cfg.AuthSecret, *ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, token)
	return nil
}

// run dispatches to a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	var err error
	switch {
	case len(args) > 0 && args[0] == "check":
		err = runCheck(args[1:], stdout)
	case len(args) > 0 && args[0] == "token":
		err = runToken(args[1:], stdout, getenv)
	default:
		err = runGenerate(args, stdout)
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}
