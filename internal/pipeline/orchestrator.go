package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/Sagaw22/URPXconverter/internal/config"
	"github.com/Sagaw22/URPXconverter/internal/convert"
	"github.com/Sagaw22/URPXconverter/internal/metrics"
)

// Orchestrator manages queued conversion batches.
type Orchestrator struct {
	batches *BatchStore
	queue   chan *Batch
	log     *slog.Logger
	cfg     config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the batch pipeline.
func NewOrchestrator(cfg config.Config, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		batches: NewBatchStore(cfg.BatchTTL),
		queue:   make(chan *Batch, cfg.MaxQueueSize),
		log:     log,
		cfg:     cfg,
	}
}

// Start launches worker goroutines. Each worker owns one batch at a
// time; files inside a batch are always converted sequentially.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				case batch, ok := <-o.queue:
					if !ok {
						return
					}
					o.process(workerCtx, batch)
				}
			}
		}()
	}

	// Batch store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.batches.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new batch for processing.
func (o *Orchestrator) Submit(batch *Batch) error {
	o.batches.Put(batch)
	select {
	case o.queue <- batch:
		return nil
	default:
		batch.SetStatus(StatusFailed)
		return fmt.Errorf("batch queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetBatch returns a batch by ID.
func (o *Orchestrator) GetBatch(id string) *Batch {
	return o.batches.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// process converts a batch's files one at a time, in order. A failed
// file is recorded and the batch moves on; only shutdown stops the
// loop early, and never mid-file.
func (o *Orchestrator) process(ctx context.Context, batch *Batch) {
	log := o.log.With("batch_id", batch.ID, "mode", batch.Mode)
	batch.SetStatus(StatusRunning)
	metrics.BatchStarted()
	defer metrics.BatchFinished()

	for _, src := range batch.Files {
		select {
		case <-ctx.Done():
			log.Warn("shutdown before batch finished")
			batch.SetStatus(StatusPartial)
			return
		default:
		}

		start := time.Now()
		out, err := convert.Convert(src, batch.OutputDir, batch.Mode)
		if err != nil {
			kind := convert.Classify(err)
			log.Error("conversion failed", "file", src, "kind", kind, "error", err)
			batch.AddError(fmt.Sprintf("%s: %s", filepath.Base(src), err))
			metrics.ConversionFailed(string(batch.Mode), kind)
			continue
		}
		batch.AddConverted(out)
		metrics.ConversionDone(string(batch.Mode), time.Since(start).Seconds())
		log.Info("converted", "file", src, "output", out)
	}

	snap := batch.Snapshot()
	switch {
	case len(snap.Progress.Errors) == 0:
		batch.SetStatus(StatusCompleted)
	case len(snap.Progress.Converted) > 0:
		batch.SetStatus(StatusPartial)
	default:
		batch.SetStatus(StatusFailed)
	}
	log.Info("batch done",
		"converted", len(snap.Progress.Converted),
		"failed", len(snap.Progress.Errors),
	)
}
