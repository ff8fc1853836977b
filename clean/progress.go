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
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker prints a status line while a batch of files is cleaned.
// Workers call Done once per file; it is safe for concurrent use.
type ProgressTracker struct {
	mu      sync.Mutex
	w       io.Writer
	every   int
	total   int
	done    int
	failed  int
	printed int // value of done at the last status line
	began   time.Time
}

// NewProgressTracker prints to w after every `every` files of total. The
// clock starts when the tracker is created.
func NewProgressTracker(w io.Writer, total, every int) *ProgressTracker {
	return &ProgressTracker{
		w:     w,
		every: max(every, 1),
		total: total,
		began: time.Now(),
	}
}

// Done records one finished file. A non-nil err counts it as failed.
func (p *ProgressTracker) Done(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done == p.total {
		return
	}
	p.done++
	if err != nil {
		p.failed++
	}
	if p.done-p.printed >= p.every {
		p.status()
		p.printed = p.done
	}
}

// Finish prints the last status line, ends it with a newline and returns
// how long the batch took.
func (p *ProgressTracker) Finish() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status()
	fmt.Fprintln(p.w)
	return time.Since(p.began)
}

func (p *ProgressTracker) status() {
	pct := 0.0
	if p.total > 0 {
		pct = 100 * float64(p.done) / float64(p.total)
	}
	fmt.Fprintf(p.w, "\rCleaned: %d/%d files (%.1f%%), %d failed, %s",
		p.done, p.total, pct, p.failed, time.Since(p.began).Round(time.Millisecond))
}
