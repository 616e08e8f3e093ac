package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seifadel74/bookweb/internal/config"
	"github.com/seifadel74/bookweb/internal/database"
	"github.com/seifadel74/bookweb/internal/uploads"
)

// SweepUploadsCommand removes orphaned cover files from the uploads
// directory, i.e. image files no book record references anymore.
type SweepUploadsCommand struct {
	DatabasePath string
	UploadsDir   string
}

func NewSweepUploadsCommand() *SweepUploadsCommand {
	return &SweepUploadsCommand{}
}

func (cmd *SweepUploadsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("sweep-uploads", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.UploadsDir, "dir", config.DefaultUploadsDir, "Uploads directory to sweep")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sweep-uploads [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete uploaded cover images that no book references.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SweepUploadsCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	store, err := uploads.NewStore(cmd.UploadsDir, 0)
	if err != nil {
		return fmt.Errorf("failed to open uploads directory: %w", err)
	}

	janitor := uploads.NewJanitor(store, db)
	removed, err := janitor.Sweep()
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	fmt.Printf("Removed %d orphaned cover file(s) from %s\n", removed, cmd.UploadsDir)
	return nil
}
