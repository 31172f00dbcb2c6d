package movelog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrUnreadable marks failures to open or stat the log itself, as opposed to
// failures decoding its contents.
var ErrUnreadable = errors.New("move log unreadable")

// ExtParquet selects the columnar reader; every other extension is delimited text.
const ExtParquet = ".parquet"

// Table is the raw content of a move log: a header and one string slice per row,
// each row as long as the header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Index maps each column name to its position in the header.
// When a name repeats, the first occurrence wins.
func (t *Table) Index() map[string]int {
	idx := make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	return idx
}

// Missing returns the names in want that the header does not contain, in order.
func (t *Table) Missing(want []string) []string {
	idx := t.Index()
	var missing []string
	for _, name := range want {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Column returns a copy of every cell in the named column.
func (t *Table) Column(name string) ([]string, bool) {
	pos, ok := t.Index()[name]
	if !ok {
		return nil, false
	}
	cells := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = row[pos]
	}
	return cells, true
}

// ReadTable reads the whole log at path from fsys. A nil fsys reads the OS filesystem.
func ReadTable(fsys afero.Fs, path string) (*Table, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if strings.EqualFold(filepath.Ext(path), ExtParquet) {
		return readParquet(fsys, path)
	}
	r, err := Open(fsys, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	t, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}
