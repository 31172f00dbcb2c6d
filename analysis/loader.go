package analysis

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/inference-sim/reassign-analytics/analysis/movelog"
)

// LoadConfig controls how a move log becomes a Dataset.
type LoadConfig struct {
	Path string
	// Fraction of rows to keep, counted from the start of the log. Zero means 1.0.
	Fraction float64
	// Fs is the filesystem the log is read from. Nil means the OS filesystem.
	Fs     afero.Fs
	Logger logrus.FieldLogger
	// VectorWidths declares the expected vector length per vector column. Columns
	// not listed take the width of their first well-formed cell.
	VectorWidths map[string]int
}

func loggerOrDefault(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}

// LoadDataset reads every row of the log at cfg.Path, keeps the first
// floor(rows * Fraction) of them and materializes all move fields.
func LoadDataset(cfg LoadConfig) (*Dataset, error) {
	fraction := cfg.Fraction
	if fraction == 0 {
		fraction = 1
	}
	if math.IsNaN(fraction) || fraction <= 0 || fraction > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFraction, cfg.Fraction)
	}
	log := loggerOrDefault(cfg.Logger)

	tbl, err := movelog.ReadTable(cfg.Fs, cfg.Path)
	if err != nil {
		if errors.Is(err, movelog.ErrUnreadable) {
			return nil, fmt.Errorf("%w: %s: %w", ErrResourceNotFound, cfg.Path, err)
		}
		return nil, fmt.Errorf("loading %s: %w", cfg.Path, err)
	}
	if missing := tbl.Missing(movelog.RequiredColumns()); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s lacks columns %s", ErrSchemaMismatch, cfg.Path, strings.Join(missing, ", "))
	}

	total := len(tbl.Rows)
	log.Infof("Loading %d entries from dataset: %s.", total, cfg.Path)
	keep := int(math.Floor(float64(total) * fraction))
	rows := tbl.Rows[:keep]
	log.Infof("Sampled dataset to %d entries.", keep)

	p := &columnParser{rows: rows, idx: tbl.Index()}
	ds := &Dataset{
		MoveID:     p.ints(movelog.ColMoveNum),
		SolutionID: p.ints(movelog.ColSolutionID),
		ServiceID:  p.ints(movelog.ColService),
		ProcessID:  p.ints(movelog.ColProcessID),

		SrcMachineID:            p.ints(movelog.ColSourceMachine),
		SrcMachineProcessCount:  p.ints(movelog.ColSourceMachineProcessCount),
		DestMachineID:           p.ints(movelog.ColDestMachine),
		DestMachineProcessCount: p.ints(movelog.ColDestMachineProcessCount),

		MoveCost:     p.floats(movelog.ColMoveCost),
		LoadCost:     p.floats(movelog.ColLoadCost),
		BalanceCost:  p.floats(movelog.ColBalanceCost),
		SolutionCost: p.floats(movelog.ColSolutionCost),
		Improvement:  p.floats(movelog.ColImprovement),

		Source: cfg.Path,
		Report: LoadReport{
			TotalRows:     total,
			KeptRows:      keep,
			Fraction:      fraction,
			Substitutions: make(map[string]int, len(movelog.VectorColumns)),
			VectorWidths:  make(map[string]int, len(movelog.VectorColumns)),
		},
	}
	if p.err != nil {
		return nil, fmt.Errorf("loading %s: %w", cfg.Path, p.err)
	}

	targets := map[string]*[]int64{
		movelog.ColProcessResourceRequirements: &ds.ProcessSize,
		movelog.ColSourceMachineResourceUsage:  &ds.SrcMachineUsage,
		movelog.ColSourceMachineCapacities:     &ds.SrcMachineCapacity,
		movelog.ColSourceMachineTransientUsage: &ds.SrcMachineTransientUsage,
		movelog.ColDestMachineResourceUsage:    &ds.DestMachineUsage,
		movelog.ColDestMachineCapacities:       &ds.DestMachineCapacity,
		movelog.ColDestMachineTransientUsage:   &ds.DestMachineTransientUsage,
	}
	for _, name := range movelog.VectorColumns {
		col, err := ReduceVectorColumn(name, p.cells(name), cfg.VectorWidths[name])
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", cfg.Path, err)
		}
		*targets[name] = col.Sums
		ds.Report.Substitutions[name] = len(col.Substituted)
		ds.Report.VectorWidths[name] = col.Width
		if len(col.Substituted) > 0 {
			log.WithFields(logrus.Fields{
				"column": name,
				"count":  len(col.Substituted),
				"width":  col.Width,
			}).Warn("Substituted zero vectors for malformed cells.")
			log.Debugf("%s: first substituted row %d", name, col.Substituted[0])
		}
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	log.Info("Completed loading dataset.")
	return ds, nil
}

// columnParser parses whole columns and remembers the first failure, so the
// loader can check once after filling every field.
type columnParser struct {
	rows [][]string
	idx  map[string]int
	err  error
}

func (p *columnParser) cells(name string) []string {
	pos := p.idx[name]
	out := make([]string, len(p.rows))
	for i, row := range p.rows {
		out[i] = row[pos]
	}
	return out
}

func (p *columnParser) ints(name string) []int64 {
	if p.err != nil {
		return nil
	}
	pos := p.idx[name]
	out := make([]int64, len(p.rows))
	for i, row := range p.rows {
		v, err := parseIntCell(row[pos])
		if err != nil {
			p.err = fmt.Errorf("%w: row %d column %s: %q", ErrInvalidField, i, name, row[pos])
			return nil
		}
		out[i] = v
	}
	return out
}

func (p *columnParser) floats(name string) []float64 {
	if p.err != nil {
		return nil
	}
	pos := p.idx[name]
	out := make([]float64, len(p.rows))
	for i, row := range p.rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[pos]), 64)
		if err != nil {
			p.err = fmt.Errorf("%w: row %d column %s: %q", ErrInvalidField, i, name, row[pos])
			return nil
		}
		out[i] = v
	}
	return out
}

// parseIntCell also accepts integral floats such as "3.0".
func parseIntCell(cell string) (int64, error) {
	s := strings.TrimSpace(cell)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.Trunc(f) != f || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not an integer", cell)
	}
	return int64(f), nil
}
