// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package clean

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Outcome is the result of cleaning one file of a batch. Exactly one of
// Result and Err is set.
type Outcome struct {
	Path   string
	Result *FileResult
	Err    error
}

// Batch cleans several files concurrently. Files are independent: a failure
// on one file never stops the others.
type Batch struct {
	cleaner        *Cleaner
	pool           *ants.Pool
	progress       io.Writer
	reportInterval int
	logger         *slog.Logger
}

// BatchOption configures a Batch.
type BatchOption func(*Batch) error

// WithWorkers sets how many files are cleaned at the same time.
// Default is 1.
func WithWorkers(n int) BatchOption {
	return func(b *Batch) error {
		if n < 1 {
			return ErrInvalidWorkers
		}
		pool, err := ants.NewPool(n)
		if err != nil {
			return err
		}
		if b.pool != nil {
			b.pool.Release()
		}
		b.pool = pool
		return nil
	}
}

// WithProgress reports progress to w every interval files.
func WithProgress(w io.Writer, interval int) BatchOption {
	return func(b *Batch) error {
		b.progress = w
		b.reportInterval = interval
		return nil
	}
}

// WithBatchLogger sets a custom logger.
// Default is slog.Default().
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *Batch) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBatch creates a Batch that cleans files with cleaner.
func NewBatch(cleaner *Cleaner, opts ...BatchOption) (*Batch, error) {
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	b := &Batch{
		cleaner:        cleaner,
		pool:           pool,
		progress:       io.Discard,
		reportInterval: 1,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			b.Release()
			return nil, optErr
		}
	}
	return b, nil
}

// Run cleans every path and returns one Outcome per path, in input order.
func (b *Batch) Run(ctx context.Context, paths []string) []Outcome {
	outcomes := make([]Outcome, len(paths))

	tracker := NewProgressTracker(b.progress, len(paths), b.reportInterval)

	var wg sync.WaitGroup
	for i, path := range paths {
		outcomes[i].Path = path

		wg.Add(1)
		err := b.pool.Submit(func() {
			defer wg.Done()

			result, err := b.cleaner.CleanFile(ctx, path)
			if err != nil {
				b.logger.Error("error cleaning file", "path", path, "err", err)
				outcomes[i].Err = err
			} else {
				outcomes[i].Result = result
			}
			tracker.Done(err)
		})
		if err != nil {
			wg.Done()
			outcomes[i].Err = err
			tracker.Done(err)
		}
	}
	wg.Wait()

	elapsed := tracker.Finish()
	b.logger.Info("batch finished", "files", len(paths), "elapsed", elapsed)
	return outcomes
}

// Release releases the worker pool. The Batch should not be used after
// calling Release.
func (b *Batch) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}
