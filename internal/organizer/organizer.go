package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"audiomod/internal/fileutil"
	"audiomod/internal/language"
	"audiomod/internal/logging"
	"audiomod/internal/services"
)

const (
	// BucketEN is the destination for directories not otherwise classified.
	BucketEN = "EN"
	// BucketGlobal is the destination for configured locale-independent directories.
	BucketGlobal = "Global"
)

// Result is the snapshot of one organization pass.
type Result struct {
	MovedEN     []string
	MovedGlobal []string
	Skipped     []string
}

// Moves returns the total number of directories relocated.
func (r Result) Moves() int {
	return len(r.MovedEN) + len(r.MovedGlobal)
}

// Organizer classifies and relocates source subdirectories.
type Organizer struct {
	sourceDir  string
	blacklist  map[string]struct{}
	globalDirs map[string]struct{}
	logger     *slog.Logger
}

// New constructs an organizer for the given source tree. Classification keys
// are case-sensitive directory basenames.
func New(sourceDir string, blacklist, globalDirs map[string]struct{}, logger *slog.Logger) *Organizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Organizer{
		sourceDir:  sourceDir,
		blacklist:  blacklist,
		globalDirs: globalDirs,
		logger:     logger.With(logging.String(logging.FieldComponent, "organizer")),
	}
}

// Organize snapshots the immediate child directories of the source tree and
// moves each into its bucket. Children already named after a bucket are
// treated as organized by a prior run and never descended into.
func (o *Organizer) Organize(ctx context.Context) (Result, error) {
	var result Result

	entries, err := os.ReadDir(o.sourceDir)
	if err != nil {
		return result, services.Wrap(nil, "organize", "read source directory", o.sourceDir, err)
	}

	logger := logging.WithContext(ctx, o.logger)
	logger.Info("organizing source tree", logging.String("source_dir", o.sourceDir), logging.Int("entries", len(entries)))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()

		switch {
		case name == BucketEN || name == BucketGlobal:
			logger.Debug("bucket already present", logging.String("dir", name))
			result.Skipped = append(result.Skipped, name)
			continue
		case o.member(o.blacklist, name):
			attrs := []logging.Attr{logging.String("dir", name)}
			if language.Known(name) {
				attrs = append(attrs, logging.String("language", language.Display(name)))
			}
			logger.Info("skipping blacklisted directory", logging.Args(attrs...)...)
			result.Skipped = append(result.Skipped, name)
			continue
		}

		bucket := BucketEN
		if o.member(o.globalDirs, name) {
			bucket = BucketGlobal
		}
		if err := o.move(name, bucket); err != nil {
			return result, err
		}
		logger.Info("moved directory", logging.String("dir", name), logging.String("bucket", bucket))
		if bucket == BucketGlobal {
			result.MovedGlobal = append(result.MovedGlobal, name)
		} else {
			result.MovedEN = append(result.MovedEN, name)
		}
	}

	sort.Strings(result.MovedEN)
	sort.Strings(result.MovedGlobal)
	sort.Strings(result.Skipped)

	logger.Info("organization complete",
		logging.Int("moved_en", len(result.MovedEN)),
		logging.Int("moved_global", len(result.MovedGlobal)),
		logging.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

func (o *Organizer) move(name, bucket string) error {
	src := filepath.Join(o.sourceDir, name)
	dst := filepath.Join(o.sourceDir, bucket, name)
	if err := fileutil.MoveDir(src, dst); err != nil {
		if errors.Is(err, os.ErrExist) {
			return services.Wrap(
				services.ErrDestinationConflict,
				"organize",
				"move directory",
				fmt.Sprintf("%s already exists under %s", name, bucket),
				nil,
			)
		}
		return services.Wrap(nil, "organize", "move directory", name, err)
	}
	return nil
}

func (o *Organizer) member(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}
