// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package batch classifies CSV files of information request texts in
// parallel while preserving input row order in the output.
package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"sync"

	"github.com/gmcaixeta/PrivacyAware/internal/engine"
	"github.com/gmcaixeta/PrivacyAware/internal/observability"
)

var (
	// ErrMissingTextColumn reports an input header without the
	// configured text column.
	ErrMissingTextColumn = errors.New("text column not found in header")

	// ErrEmptyInput reports an input with no header row.
	ErrEmptyInput = errors.New("input has no header row")
)

// Options configures a batch run. Zero values fall back to defaults.
type Options struct {
	// TextColumn is the header name of the column holding the request
	// text. Defaults to "text".
	TextColumn string

	// Workers caps classification concurrency. Defaults to GOMAXPROCS.
	Workers int

	// Progress, when set, is called after each row completes with the
	// number of rows done so far. Calls are monotonically increasing.
	Progress func(done, total int)
}

// RowResult is the outcome for one input row.
type RowResult struct {
	Index  int
	Text   string
	Result engine.DocumentResult
	Err    error
}

// Processor runs the engine over CSV inputs with a worker pool.
type Processor struct {
	engine   *engine.Engine
	observer *observability.Observer
}

// NewProcessor builds a batch processor over a ready engine.
func NewProcessor(eng *engine.Engine, obs *observability.Observer) *Processor {
	return &Processor{engine: eng, observer: obs}
}

// Process reads rows from r, classifies the text column in parallel
// and writes an augmented CSV to w. The output keeps every input
// column and appends intent, confidence, entity_count and
// has_personal_data_flag (1 or 0). Row order is preserved. Rows whose
// text is empty get an empty classification rather than failing the
// run.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	if opts.TextColumn == "" {
		opts.TextColumn = "text"
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	complete := p.observer.StartTiming("batch", "process", "csv")

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		complete(false, nil)
		return ErrEmptyInput
	}
	if err != nil {
		complete(false, nil)
		return fmt.Errorf("failed to read header: %w", err)
	}

	textCol := -1
	for i, name := range header {
		if name == opts.TextColumn {
			textCol = i
			break
		}
	}
	if textCol < 0 {
		complete(false, nil)
		return fmt.Errorf("%w: %q", ErrMissingTextColumn, opts.TextColumn)
	}

	rows, err := readRows(reader)
	if err != nil {
		complete(false, nil)
		return err
	}

	results := p.classifyAll(ctx, rows, textCol, opts)

	writer := csv.NewWriter(w)
	out := append(append([]string{}, header...), "intent", "confidence", "entity_count", "has_personal_data_flag")
	if err := writer.Write(out); err != nil {
		complete(false, nil)
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		res := results[i]
		record := append([]string{}, row...)
		if res.Err != nil {
			record = append(record, "", "", "", "error: "+res.Err.Error())
		} else {
			flag := "0"
			if res.Result.HasPersonalData() {
				flag = "1"
			}
			record = append(record,
				res.Result.Intent,
				strconv.FormatFloat(res.Result.Confidence, 'f', 2, 64),
				strconv.Itoa(len(res.Result.Entities)),
				flag,
			)
		}
		if err := writer.Write(record); err != nil {
			complete(false, nil)
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		complete(false, nil)
		return err
	}

	complete(true, map[string]any{"rows": len(rows), "workers": opts.Workers})
	return nil
}

func readRows(reader *csv.Reader) ([][]string, error) {
	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, record)
	}
}

// classifyAll fans rows out to workers. Results land in a slice
// indexed by row position, so output order never depends on worker
// scheduling.
func (p *Processor) classifyAll(ctx context.Context, rows [][]string, textCol int, opts Options) []RowResult {
	results := make([]RowResult, len(rows))
	jobs := make(chan int)

	var done int
	var progressMu sync.Mutex
	reportProgress := func() {
		if opts.Progress == nil {
			return
		}
		progressMu.Lock()
		done++
		opts.Progress(done, len(rows))
		progressMu.Unlock()
	}

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = p.classifyRow(rows[idx], idx, textCol)
				reportProgress()
			}
		}()
	}

	for idx := range rows {
		if ctx.Err() != nil {
			// Rows not yet handed to a worker get the context error.
			for j := idx; j < len(rows); j++ {
				results[j] = RowResult{Index: j, Err: ctx.Err()}
			}
			close(jobs)
			wg.Wait()
			return results
		}
		jobs <- idx
	}
	close(jobs)
	wg.Wait()
	return results
}

func (p *Processor) classifyRow(row []string, idx, textCol int) RowResult {
	if textCol >= len(row) {
		return RowResult{Index: idx, Err: fmt.Errorf("row has %d columns, text column is %d", len(row), textCol+1)}
	}
	text := row[textCol]
	return RowResult{
		Index:  idx,
		Text:   text,
		Result: p.engine.ClassifyText(text),
	}
}
