// Package workspace connects sparse matrices to the file system: it resolves
// user choices to matrix files, loads them under the configured parse policy
// and persists operation results as timestamped files.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvsparse/sparse"
	"go.uber.org/zap"
)

// ErrNotFound is returned by Resolve when the chosen file does not exist.
var ErrNotFound = errors.New("workspace: file not found")

// timestampLayout renders result timestamps as YYYYmmdd_HHMMSS.
const timestampLayout = "20060102_150405"

// Workspace owns the results directory and the list of sample files.
// It is not safe for concurrent use.
type Workspace struct {
	resultsDir string
	samples    []string
	parseOpts  []sparse.Option
	log        *zap.Logger
	now        func() time.Time
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithLogger sets the logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.log = l
		}
	}
}

// WithSamples sets the sample files offered as choices 1..N.
func WithSamples(paths ...string) Option {
	return func(w *Workspace) { w.samples = append([]string(nil), paths...) }
}

// WithParseOptions sets the options forwarded to sparse.LoadFile.
func WithParseOptions(opts ...sparse.Option) Option {
	return func(w *Workspace) { w.parseOpts = append([]sparse.Option(nil), opts...) }
}

// WithClock replaces time.Now for result file names.
func WithClock(now func() time.Time) Option {
	return func(w *Workspace) { w.now = now }
}

// New creates a Workspace writing results into resultsDir.
func New(resultsDir string, opts ...Option) *Workspace {
	w := &Workspace{
		resultsDir: resultsDir,
		log:        zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// ResultsDir returns the directory results are written to.
func (w *Workspace) ResultsDir() string { return w.resultsDir }

// Sample describes one configured sample file.
type Sample struct {
	Index  int    // 1-based choice number
	Path   string // file path as configured
	Exists bool   // whether the file is currently a regular file
}

// Samples lists the configured sample files and whether each exists.
func (w *Workspace) Samples() []Sample {
	out := make([]Sample, 0, len(w.samples))
	for i, p := range w.samples {
		out = append(out, Sample{Index: i + 1, Path: p, Exists: isRegularFile(p)})
	}

	return out
}

// Resolve maps a user choice to a file path: "1".."N" selects a sample file,
// anything else is taken as a path. The result must be an existing regular
// file, otherwise ErrNotFound is returned together with the resolved path.
func (w *Workspace) Resolve(choice string) (string, error) {
	choice = strings.TrimSpace(choice)
	path := choice
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(w.samples) {
		path = w.samples[n-1]
	}
	if path == "" || !isRegularFile(path) {
		return path, fmt.Errorf("%w: %q", ErrNotFound, path)
	}

	return path, nil
}

// Load resolves choice and parses the file with the workspace parse options.
// Entries skipped under a lenient policy are logged as warnings. The
// resolved path is returned even when loading fails.
func (w *Workspace) Load(choice string) (*sparse.Matrix, string, error) {
	path, err := w.Resolve(choice)
	if err != nil {
		return nil, path, err
	}

	skipped := 0
	opts := append(append([]sparse.Option(nil), w.parseOpts...),
		sparse.WithOnSkip(func(line int, e sparse.Entry) {
			skipped++
			w.log.Warn("skipping out-of-bounds element",
				zap.String("path", path),
				zap.Int("line", line),
				zap.Int("row", e.Row),
				zap.Int("col", e.Col),
				zap.Int64("value", e.Value))
		}))

	m, err := sparse.LoadFile(path, opts...)
	if err != nil {
		w.log.Debug("matrix load failed", zap.String("path", path), zap.Error(err))
		return nil, path, err
	}
	w.log.Info("matrix loaded",
		zap.String("path", path),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int("nnz", m.NNZ()),
		zap.Int("skipped", skipped))

	return m, path, nil
}

// Save writes m into the results directory as result_<op>_<timestamp>.txt,
// creating the directory when needed. It returns the written path.
func (w *Workspace) Save(m *sparse.Matrix, op Operation) (string, error) {
	if m == nil {
		return "", fmt.Errorf("save result: %w", sparse.ErrNilMatrix)
	}
	if err := w.ensureResultsDir(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("result_%s_%s.txt", op, w.now().Format(timestampLayout))
	path := filepath.Join(w.resultsDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save result: %w: %w", sparse.ErrIO, err)
	}
	if _, err := m.WriteTo(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("save result %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("save result %s: %w: %w", path, sparse.ErrIO, err)
	}
	w.log.Info("result saved",
		zap.String("path", path),
		zap.Stringer("operation", op),
		zap.Int("nnz", m.NNZ()))

	return path, nil
}

func (w *Workspace) ensureResultsDir() error {
	if _, err := os.Stat(w.resultsDir); err == nil {
		return nil
	}
	if err := os.MkdirAll(w.resultsDir, 0o755); err != nil {
		return fmt.Errorf("create results directory: %w: %w", sparse.ErrIO, err)
	}
	w.log.Info("created results directory", zap.String("dir", w.resultsDir))

	return nil
}

func isRegularFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
