package bootsum

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// builder accumulates entries into a Table, remembering where each
// (sum, month, day) candidate sits so replacements keep their position.
type builder struct {
	table Table
	index map[uint32]int
}

func newBuilder() *builder {
	return &builder{
		table: make(Table),
		index: make(map[uint32]int),
	}
}

func slotKey(sum uint16, month, day uint8) uint32 {
	return uint32(sum)<<16 | uint32(month)<<8 | uint32(day)
}

// insert adds e under its sum. An existing entry for the same
// (month, day) is replaced in place only when e's second is strictly
// closer to MinSecond; ties keep the existing entry.
func (b *builder) insert(e Entry) {
	sum := e.Sum()
	slot := slotKey(sum, e.Month, e.Day)

	if i, ok := b.index[slot]; ok {
		if e.secondDistance() < b.table[sum][i].secondDistance() {
			b.table[sum][i] = e
		}
		return
	}

	b.index[slot] = len(b.table[sum])
	b.table[sum] = append(b.table[sum], e)
}

// addMonth enumerates every (day, minute, second) of month.
func (b *builder) addMonth(month uint8) {
	for day := uint8(1); day <= DaysInMonth(month); day++ {
		for minute := uint8(0); minute <= MaxMinute; minute++ {
			for second := uint8(MinSecond); second <= MaxSecond; second++ {
				b.insert(NewEntry(month, day, minute, second))
			}
		}
	}
}

// Build enumerates every valid (month, day, minute, second) and folds
// the candidates into a Table keyed by their boot time sum.
// The result is fully deterministic.
func Build() Table {
	b := newBuilder()
	for month := uint8(1); month <= 12; month++ {
		b.addMonth(month)
	}
	return b.table
}

// BuildParallel produces the same Table as Build, building each month
// on a pool of workers and merging the partial tables in month order.
//
// workers: Number of parallel workers. If 0 or negative, uses runtime.NumCPU().
// progressCallback may be nil; it is called from the worker goroutines.
func BuildParallel(workers int, progressCallback func(string)) (Table, error) {
	workerPoolSize := workers
	if workerPoolSize <= 0 {
		workerPoolSize = runtime.NumCPU()
	}

	// Months never share a (month, day), so each partial table can be
	// built independently and concatenated per key.
	partials := make([]Table, 12)

	var eg errgroup.Group
	eg.SetLimit(workerPoolSize)
	for i := range partials {
		i := i
		month := uint8(i + 1)
		eg.Go(func() error {
			b := newBuilder()
			b.addMonth(month)
			partials[i] = b.table

			if progressCallback != nil {
				progressCallback(fmt.Sprintf("  Month %d complete: %d sums, %d entries",
					month, len(b.table), b.table.EntryCount()))
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	table := make(Table)
	for _, partial := range partials {
		// Keys within a partial are independent, so map order does not matter here.
		for sum, entries := range partial {
			table[sum] = append(table[sum], entries...)
		}
	}

	if progressCallback != nil {
		progressCallback(fmt.Sprintf("Built table: %d sums, %d entries", len(table), table.EntryCount()))
	}

	return table, nil
}
