package movelog

import (
	"fmt"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"github.com/spf13/afero"
)

// Row is the Parquet schema of a move log. Resource vectors stay in their
// textual list form so both formats share one parse path.
type Row struct {
	MoveNum                     int64   `parquet:"MoveNum"`
	ProcessID                   int64   `parquet:"ProcessID"`
	SolutionID                  int64   `parquet:"SolutionId"`
	Service                     int64   `parquet:"Service"`
	SourceMachine               int64   `parquet:"SourceMachine"`
	SourceMachineProcessCount   int64   `parquet:"SourceMachineProcessCount"`
	DestMachine                 int64   `parquet:"DestMachine"`
	DestMachineProcessCount     int64   `parquet:"DestMachineProcessCount"`
	MoveCost                    float64 `parquet:"MoveCost"`
	LoadCost                    float64 `parquet:"LoadCost"`
	BalanceCost                 float64 `parquet:"BalanceCost"`
	SolutionCost                float64 `parquet:"SolutionCost"`
	Improvement                 float64 `parquet:"Improvement"`
	ProcessResourceRequirements string  `parquet:"ProcessResourceRequirements"`
	SourceMachineResourceUsage  string  `parquet:"SourceMachineResourceUsage"`
	SourceMachineCapacities     string  `parquet:"SourceMachineCapacities"`
	SourceMachineTransientUsage string  `parquet:"SourceMachineTransientUsage"`
	DestMachineResourceUsage    string  `parquet:"DestMachineResourceUsage"`
	DestMachineCapacities       string  `parquet:"DestMachineCapacities"`
	DestMachineTransientUsage   string  `parquet:"DestMachineTransientUsage"`
}

// record renders r in RequiredColumns order.
func (r *Row) record() []string {
	i := func(v int64) string { return strconv.FormatInt(v, 10) }
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return []string{
		i(r.MoveNum), i(r.ProcessID), i(r.SolutionID), i(r.Service),
		i(r.SourceMachine), i(r.SourceMachineProcessCount),
		i(r.DestMachine), i(r.DestMachineProcessCount),
		f(r.MoveCost), f(r.LoadCost), f(r.BalanceCost), f(r.SolutionCost), f(r.Improvement),
		r.ProcessResourceRequirements,
		r.SourceMachineResourceUsage,
		r.SourceMachineCapacities,
		r.SourceMachineTransientUsage,
		r.DestMachineResourceUsage,
		r.DestMachineCapacities,
		r.DestMachineTransientUsage,
	}
}

// readParquet returns the file's own field names as the header when a required
// column is missing, without reading any rows; the caller reports the mismatch.
func readParquet(fsys afero.Fs, path string) (*Table, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	pf, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("opening parquet file %s: %w", path, err)
	}
	var fields []string
	for _, field := range pf.Schema().Fields() {
		fields = append(fields, field.Name())
	}
	schemaOnly := &Table{Header: fields}
	if len(schemaOnly.Missing(RequiredColumns())) > 0 {
		return schemaOnly, nil
	}

	rows, err := parquet.Read[Row](file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("reading parquet rows from %s: %w", path, err)
	}
	t := &Table{Header: RequiredColumns(), Rows: make([][]string, len(rows))}
	for i := range rows {
		t.Rows[i] = rows[i].record()
	}
	return t, nil
}
