package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seifadel74/bookweb/internal/config"
	"github.com/seifadel74/bookweb/internal/covers"
	"github.com/seifadel74/bookweb/internal/seed"
)

// FetchCoversCommand downloads cover images for the seeded sample books
// from Open Library into the uploads directory.
type FetchCoversCommand struct {
	OutputDir string
	Verbose   bool
}

func NewFetchCoversCommand() *FetchCoversCommand {
	return &FetchCoversCommand{}
}

func (cmd *FetchCoversCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("fetch-covers", flag.ExitOnError)

	fs.StringVar(&cmd.OutputDir, "output", config.DefaultUploadsDir, "Directory to store downloaded cover images")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s fetch-covers [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Download cover images for the sample catalog from Open Library.\n")
		fmt.Fprintf(os.Stderr, "Covers that already exist on disk are skipped, so the command is\n")
		fmt.Fprintf(os.Stderr, "safe to re-run. Requests are throttled to one per second.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *FetchCoversCommand) Run() error {
	fmt.Println("Fetch Covers")
	fmt.Println("============")

	absOutputDir, err := filepath.Abs(cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}
	cmd.OutputDir = absOutputDir

	fmt.Printf("Output directory: %s\n\n", cmd.OutputDir)

	client := covers.NewOpenLibraryClient()
	fetcher, err := covers.NewFetcher(client, cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to initialize cover fetcher: %w", err)
	}

	ctx := context.Background()
	samples := seed.SampleCovers()

	var downloaded, skipped int
	var fetchErrors []string

	for _, sample := range samples {
		if cmd.Verbose {
			fmt.Printf("  -> \"%s\" by %s...\n", sample.Title, sample.Author)
		}

		wrote, err := fetcher.Fetch(ctx, sample.Title, sample.Author, sample.Filename)
		if err != nil {
			errMsg := fmt.Sprintf("Failed to fetch cover for \"%s\": %v", sample.Title, err)
			fetchErrors = append(fetchErrors, errMsg)
			if cmd.Verbose {
				fmt.Printf("    [ERROR] %s\n", err)
			}
			continue
		}

		if wrote {
			downloaded++
			if cmd.Verbose {
				fmt.Printf("    [OK] Downloaded %s\n", sample.Filename)
			}
		} else {
			skipped++
			if cmd.Verbose {
				fmt.Printf("    [SKIP] %s already exists\n", sample.Filename)
			}
		}
	}

	fmt.Println("\n=== Fetch Summary ===")
	fmt.Printf("Covers downloaded: %d/%d\n", downloaded, len(samples))
	fmt.Printf("Already present: %d\n", skipped)

	if len(fetchErrors) > 0 {
		fmt.Printf("\n%d errors occurred:\n", len(fetchErrors))
		for _, errMsg := range fetchErrors {
			fmt.Printf("  [ERROR] %s\n", errMsg)
		}
	}

	fmt.Println("\nFetch complete!")
	return nil
}
