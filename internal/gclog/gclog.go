// Package gclog is the collector's structured logger. It is discarded by
// default so embedding a collector in a host that never calls Init costs
// nothing; a host that wants visibility into collection cycles calls Init
// once at startup.
//
// Unlike a generic request/day-rotated log, the file this package writes
// rotates on collection-cycle counts rather than wall-clock days: a
// long-running embedding sees one manageable file per N collections
// instead of one ever-growing file for the process's whole lifetime, and
// "how many cycles are in this file" is a more useful unit here than "how
// many hours".
package gclog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// L is the package logger, for events outside a collection cycle (arena
// overflow, out-of-memory). Collection cycles themselves go through
// LogCollection instead, since that's the one call site that needs to
// track the rotation counter.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix           = "emrt-gc-"
	logSuffix           = ".log"
	defaultRotateCycles = 500 // collections per generation file
	retainedGenerations = 5   // oldest generations beyond this are pruned
)

var (
	mu          sync.Mutex
	logDir      string
	level       slog.Level
	rotateEvery int
	generation  int
	sinceRotate int
)

// Options configures Init.
type Options struct {
	Enabled bool // If false, all logging is discarded.

	// LogDir is the directory generation files are written to. Default:
	// ~/.emrt/logs.
	LogDir string

	Level slog.Level // Minimum log level. Default: LevelInfo when enabled.

	// RotateEveryNCollections is how many completed collection cycles a
	// single generation file covers before LogCollection opens the next
	// one. Default: 500.
	RotateEveryNCollections int
}

// Init configures the package logger and resets the rotation counter. Call
// from main() before touching a Collector. If opts.Enabled is false, L
// discards everything and LogCollection is a no-op.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	generation = 0
	sinceRotate = 0

	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		logDir = ""
		return nil
	}

	dir := opts.LogDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".emrt", "logs")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	logDir = dir
	level = opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	rotateEvery = opts.RotateEveryNCollections
	if rotateEvery <= 0 {
		rotateEvery = defaultRotateCycles
	}

	return openGeneration()
}

// LogCollection records one completed collection cycle's before/after live
// counts and rotates to a new generation file every
// Options.RotateEveryNCollections calls. Safe to call when logging is
// disabled (L is a no-op discard logger and logDir is empty, so rotation
// never triggers).
func LogCollection(liveBefore, liveAfter int) {
	mu.Lock()
	defer mu.Unlock()

	L.Info("collect finished",
		"live_before", liveBefore,
		"live_after", liveAfter,
		"reclaimed", liveBefore-liveAfter,
		"generation", generation,
	)

	if logDir == "" {
		return
	}
	sinceRotate++
	if sinceRotate < rotateEvery {
		return
	}
	sinceRotate = 0
	generation++
	if err := openGeneration(); err != nil {
		L.Warn("log rotation failed, continuing on the previous generation file", "error", err, "generation", generation)
		generation--
	}
}

func openGeneration() error {
	pruneOldGenerations()

	filename := filepath.Join(logDir, fmt.Sprintf("%s%04d%s", logPrefix, generation, logSuffix))
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// pruneOldGenerations removes generation files beyond retainedGenerations,
// oldest first. Pruning is by generation sequence, not file age, since a
// host that runs for a long time between restarts but collects rarely
// should not lose its oldest logs just because they're calendar-old.
func pruneOldGenerations() {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, e := range entries {
		n := e.Name()
		if strings.HasPrefix(n, logPrefix) && strings.HasSuffix(n, logSuffix) {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	for len(names) > retainedGenerations-1 {
		_ = os.Remove(filepath.Join(logDir, names[0]))
		names = names[1:]
	}
}
