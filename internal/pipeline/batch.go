package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sagaw22/URPXconverter/internal/convert"
)

// BatchStatus represents the state of a conversion batch.
type BatchStatus string

const (
	StatusQueued    BatchStatus = "queued"
	StatusRunning   BatchStatus = "running"
	StatusCompleted BatchStatus = "completed"
	StatusPartial   BatchStatus = "partial"
	StatusFailed    BatchStatus = "failed"
)

// Batch tracks one submitted set of source files. Files are converted
// strictly sequentially, in the order given, and a failing file never
// stops the rest of the batch.
type Batch struct {
	mu sync.Mutex

	ID        string       `json:"batch_id"`
	Files     []string     `json:"files"`
	OutputDir string       `json:"output_dir"`
	Mode      convert.Mode `json:"mode"`

	Status   BatchStatus `json:"status"`
	Progress Progress    `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Progress tracks per-batch conversion progress.
type Progress struct {
	TotalFiles int      `json:"total_files"`
	FilesDone  int      `json:"files_done"`
	Converted  []string `json:"converted"`
	Errors     []string `json:"errors"`
}

// NewBatch creates a queued batch for the given files.
func NewBatch(files []string, outputDir string, mode convert.Mode) *Batch {
	now := time.Now()
	return &Batch{
		ID:        uuid.NewString(),
		Files:     files,
		OutputDir: outputDir,
		Mode:      mode,
		Status:    StatusQueued,
		Progress:  Progress{TotalFiles: len(files)},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetStatus updates batch status atomically.
func (b *Batch) SetStatus(status BatchStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Status = status
	b.UpdatedAt = time.Now()
}

// AddConverted records one successfully written output path.
func (b *Batch) AddConverted(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Progress.Converted = append(b.Progress.Converted, path)
	b.Progress.FilesDone++
	b.UpdatedAt = time.Now()
}

// AddError records one per-file failure message.
func (b *Batch) AddError(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Progress.Errors = append(b.Progress.Errors, msg)
	b.Progress.FilesDone++
	b.UpdatedAt = time.Now()
}

// BatchSnapshot is a read-only, JSON-safe copy of batch state.
type BatchSnapshot struct {
	ID        string       `json:"batch_id"`
	Status    BatchStatus  `json:"status"`
	Mode      convert.Mode `json:"mode"`
	OutputDir string       `json:"output_dir"`
	Progress  Progress     `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the batch state.
func (b *Batch) Snapshot() BatchSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	converted := append([]string{}, b.Progress.Converted...)
	errs := b.Progress.Errors
	if errs == nil {
		errs = []string{}
	} else {
		errs = append([]string{}, errs...)
	}
	return BatchSnapshot{
		ID:        b.ID,
		Status:    b.Status,
		Mode:      b.Mode,
		OutputDir: b.OutputDir,
		Progress: Progress{
			TotalFiles: b.Progress.TotalFiles,
			FilesDone:  b.Progress.FilesDone,
			Converted:  converted,
			Errors:     errs,
		},
	}
}

// BatchStore is a thread-safe in-memory batch registry with TTL
// eviction.
type BatchStore struct {
	mu      sync.Mutex
	batches map[string]*Batch
	ttl     time.Duration
}

func NewBatchStore(ttl time.Duration) *BatchStore {
	return &BatchStore{
		batches: make(map[string]*Batch),
		ttl:     ttl,
	}
}

func (s *BatchStore) Put(b *Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[b.ID] = b
}

func (s *BatchStore) Get(id string) *Batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batches[id]
}

// Cleanup removes expired batches.
func (s *BatchStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, b := range s.batches {
		if now.Sub(b.UpdatedAt) > s.ttl {
			delete(s.batches, id)
		}
	}
}
