package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - seed:   Reset the store and generate the dataset
// - reset:  Clear every generated record
// - export: Write CSV tables to a bucket or stdout
// - token:  Issue an access token for the HTTP API

func main() {
	// Subcommand definitions
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	resetCmd := flag.NewFlagSet("reset", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	// seed parameters
	seedValue := seedCmd.Uint64("seed", 0, "PRNG seed (0 uses the configured seed)")
	seedWorkers := seedCmd.Int("workers", 0, "Parallel inserts per entity type (0 uses the configured value)")
	seedAtomic := seedCmd.Bool("atomic", false, "Run reset and build inside one transaction")

	// export parameters
	exportBucket := exportCmd.String("bucket", "", "Bucket URL, e.g. file:///tmp/export (empty uses the configured bucket)")
	exportKind := exportCmd.String("kind", "", "Write a single kind to stdout instead of a bucket")

	// token parameters
	tokenSubject := tokenCmd.String("sub", "", "Subject user ID (empty generates one)")
	tokenRole := tokenCmd.String("role", "admin", "Role granted to the token")
	tokenTTL := tokenCmd.Duration("ttl", time.Hour, "Token lifetime")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := catalogFlags{
		Seed: seedFlags{
			cmd:     seedCmd,
			seed:    seedValue,
			workers: seedWorkers,
			atomic:  seedAtomic,
		},
		Reset: resetFlags{
			cmd: resetCmd,
		},
		Export: exportFlags{
			cmd:    exportCmd,
			bucket: exportBucket,
			kind:   exportKind,
		},
		Token: tokenFlags{
			cmd:     tokenCmd,
			subject: tokenSubject,
			role:    tokenRole,
			ttl:     tokenTTL,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type catalogFlags struct {
	Seed   seedFlags
	Reset  resetFlags
	Export exportFlags
	Token  tokenFlags
}

type seedFlags struct {
	cmd     *flag.FlagSet
	seed    *uint64
	workers *int
	atomic  *bool
}

type resetFlags struct {
	cmd *flag.FlagSet
}

type exportFlags struct {
	cmd    *flag.FlagSet
	bucket *string
	kind   *string
}

type tokenFlags struct {
	cmd     *flag.FlagSet
	subject *string
	role    *string
	ttl     *time.Duration
}

func runSubcommand(ctx context.Context, flags *catalogFlags) error {
	switch os.Args[1] {
	case "seed":
		return handleSeed(ctx, flags)
	case "reset":
		return handleReset(ctx, flags)
	case "export":
		return handleExport(ctx, flags)
	case "token":
		return handleToken(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleSeed(ctx context.Context, flags *catalogFlags) error {
	if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse seed flags")
	}
	if *flags.Seed.workers < 0 {
		return errors.New("--workers must not be negative")
	}

	return runSeed(ctx, *flags.Seed.seed, *flags.Seed.workers, *flags.Seed.atomic)
}

func handleReset(ctx context.Context, flags *catalogFlags) error {
	if err := flags.Reset.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse reset flags")
	}

	return runReset(ctx)
}

func handleExport(ctx context.Context, flags *catalogFlags) error {
	if err := flags.Export.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse export flags")
	}

	return runExport(ctx, *flags.Export.bucket, *flags.Export.kind)
}

func handleToken(flags *catalogFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	return runToken(*flags.Token.subject, *flags.Token.role, *flags.Token.ttl)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}

func printUsage() {
	fmt.Println("Usage: catalog <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  seed      Reset the store and generate the dataset")
	fmt.Println("  reset     Clear every generated record")
	fmt.Println("  export    Write CSV tables to a bucket or stdout")
	fmt.Println("  token     Issue an access token for the HTTP API")
	fmt.Println("")
	fmt.Println("Use 'catalog <command> -h' for more information about a command.")
}

// Command implementations are in their respective files
