package inference

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrArtifactLoad wraps every failure to bring up a model artifact.
var ErrArtifactLoad = errors.New("model artifact load failed")

// Artifact is a pre-fitted binary classifier. Implementations are read-only
// after load and safe for concurrent use.
type Artifact interface {
	Name() string
	// Features lists the column names the artifact was fitted on.
	Features() []string
	// PredictProba returns [P(class 0), P(class 1)] per frame row.
	PredictProba(ctx context.Context, f Frame) ([][2]float64, error)
	// Predict returns the artifact's own class decision per frame row.
	Predict(ctx context.Context, f Frame) ([]int, error)
}

// Frame is a named-column table handed to an artifact.
type Frame struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// NewFrame builds a frame from rows keyed by column name. Columns are sorted
// so the same rows always produce the same frame.
func NewFrame(rows ...map[string]any) Frame {
	seen := map[string]struct{}{}
	for _, r := range rows {
		for k := range r {
			seen[k] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	out := Frame{Columns: cols, Rows: make([][]any, len(rows))}
	for i, r := range rows {
		vals := make([]any, len(cols))
		for j, c := range cols {
			vals[j] = r[c]
		}
		out.Rows[i] = vals
	}
	return out
}

// Require returns the position of each named column, failing with a
// *MissingColumnsError when any is absent.
func (f Frame) Require(names []string) (map[string]int, error) {
	idx := make(map[string]int, len(f.Columns))
	for i, c := range f.Columns {
		idx[c] = i
	}
	var missing []string
	for _, n := range names {
		if _, ok := idx[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return idx, nil
}

type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("columns are missing: %s", strings.Join(e.Columns, ", "))
}

type Options struct {
	Path    string
	URL     string
	Timeout time.Duration
}

// Load brings up the artifact named by opts. A non-empty URL selects the
// remote model server, otherwise the file at Path is read.
func Load(ctx context.Context, opts Options) (Artifact, error) {
	if opts.URL != "" {
		a, err := LoadRemote(ctx, opts.URL, opts.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrArtifactLoad, opts.URL, err)
		}
		return a, nil
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("%w: no model path or url configured", ErrArtifactLoad)
	}
	a, err := LoadLinear(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrArtifactLoad, opts.Path, err)
	}
	return a, nil
}
