package analysis

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/sirupsen/logrus"
)

// ProcessMoves are the moves of one process. All slices are aligned and ordered
// by position in the dataset.
type ProcessMoves struct {
	ProcessID    int64
	Positions    []int
	MoveIDs      []int64
	SrcMachines  []int64
	DestMachines []int64
}

// Len returns the number of matched moves.
func (pm ProcessMoves) Len() int {
	return len(pm.Positions)
}

// MachineUsage lists the usage snapshots recorded for one machine: first every
// snapshot taken while it was a move's source, in move order, then every snapshot
// taken while it was a move's destination, in move order. The two blocks are
// concatenated, not merged; callers needing one timeline merge on Positions.
type MachineUsage struct {
	MachineID int64
	Values    []int64
	Positions []int
	// AsSource is the length of the leading "as source" block.
	AsSource int
}

// AsDestination is the length of the trailing "as destination" block.
func (mu MachineUsage) AsDestination() int {
	return len(mu.Values) - mu.AsSource
}

// EntityQuery answers per-process and per-machine lookups. It indexes move
// positions once at construction and never modifies the dataset or the index
// afterwards, so it is safe for concurrent readers.
type EntityQuery struct {
	ds        *Dataset
	log       logrus.FieldLogger
	byProcess map[int64]*roaring.Bitmap
	bySrc     map[int64]*roaring.Bitmap
	byDest    map[int64]*roaring.Bitmap
}

// NewEntityQuery indexes ds. Positions are stored as uint32, which bounds the
// dataset at math.MaxUint32 moves.
func NewEntityQuery(ds *Dataset, logger logrus.FieldLogger) (*EntityQuery, error) {
	if uint64(ds.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("dataset of %d moves exceeds the %d positions an index can hold", ds.Len(), uint64(math.MaxUint32))
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	q := &EntityQuery{
		ds:        ds,
		log:       loggerOrDefault(logger),
		byProcess: indexPositions(ds.ProcessID),
		bySrc:     indexPositions(ds.SrcMachineID),
		byDest:    indexPositions(ds.DestMachineID),
	}
	return q, nil
}

func indexPositions(ids []int64) map[int64]*roaring.Bitmap {
	idx := make(map[int64]*roaring.Bitmap)
	for i, id := range ids {
		bm, ok := idx[id]
		if !ok {
			bm = roaring.New()
			idx[id] = bm
		}
		bm.Add(uint32(i))
	}
	for _, bm := range idx {
		bm.RunOptimize()
	}
	return idx
}

func positions(bm *roaring.Bitmap) []int {
	if bm == nil {
		return []int{}
	}
	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// MovesForProcess returns every move of processID in dataset order. With unique,
// it keeps only the first move from each distinct source machine and the first
// move to each distinct destination machine, deduplicated and in dataset order.
func (q *EntityQuery) MovesForProcess(processID int64, unique bool) ProcessMoves {
	matched := positions(q.byProcess[processID])

	if unique {
		seenSrc := make(map[int64]bool)
		seenDest := make(map[int64]bool)
		keep := roaring.New()
		for _, p := range matched {
			if src := q.ds.SrcMachineID[p]; !seenSrc[src] {
				seenSrc[src] = true
				keep.Add(uint32(p))
			}
			if dest := q.ds.DestMachineID[p]; !seenDest[dest] {
				seenDest[dest] = true
				keep.Add(uint32(p))
			}
		}
		matched = positions(keep)
	}

	pm := ProcessMoves{
		ProcessID:    processID,
		Positions:    matched,
		MoveIDs:      make([]int64, len(matched)),
		SrcMachines:  make([]int64, len(matched)),
		DestMachines: make([]int64, len(matched)),
	}
	for i, p := range matched {
		pm.MoveIDs[i] = q.ds.MoveID[p]
		pm.SrcMachines[i] = q.ds.SrcMachineID[p]
		pm.DestMachines[i] = q.ds.DestMachineID[p]
	}
	q.log.Debugf("Returning %d results for process %d.", pm.Len(), processID)
	return pm
}

// UsageForMachine returns the usage snapshots of machineID, source block first.
func (q *EntityQuery) UsageForMachine(machineID int64) MachineUsage {
	asSrc := positions(q.bySrc[machineID])
	asDest := positions(q.byDest[machineID])

	mu := MachineUsage{
		MachineID: machineID,
		Values:    make([]int64, 0, len(asSrc)+len(asDest)),
		Positions: make([]int, 0, len(asSrc)+len(asDest)),
		AsSource:  len(asSrc),
	}
	for _, p := range asSrc {
		mu.Values = append(mu.Values, q.ds.SrcMachineUsage[p])
		mu.Positions = append(mu.Positions, p)
	}
	for _, p := range asDest {
		mu.Values = append(mu.Values, q.ds.DestMachineUsage[p])
		mu.Positions = append(mu.Positions, p)
	}
	q.log.Debugf("Returning %d results for machine %d.", len(mu.Values), machineID)
	return mu
}
