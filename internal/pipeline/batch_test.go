package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sagaw22/URPXconverter/internal/config"
	"github.com/Sagaw22/URPXconverter/internal/convert"
)

const validProject = `{
	"application": {
		"applicationInfo": {"name": "Pick"},
		"urscript": {"script": "move_j(p1)"}
	}
}`

func testOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	cfg := config.Config{
		WorkerCount:  1,
		MaxQueueSize: 4,
		BatchTTL:     time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewOrchestrator(cfg, log)
}

func TestProcess_MixedBatch(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.urpx")
	bad := filepath.Join(dir, "bad.urpx")
	if err := os.WriteFile(good, []byte(validProject), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.urpx")

	o := testOrchestrator(t)
	batch := NewBatch([]string{good, bad, missing}, dir, convert.ModeScript)
	o.process(context.Background(), batch)

	snap := batch.Snapshot()
	if snap.Status != StatusPartial {
		t.Errorf("status = %q, want %q", snap.Status, StatusPartial)
	}
	if len(snap.Progress.Converted) != 1 {
		t.Errorf("converted = %d, want 1", len(snap.Progress.Converted))
	}
	if len(snap.Progress.Errors) != 2 {
		t.Fatalf("errors = %d, want 2: %v", len(snap.Progress.Errors), snap.Progress.Errors)
	}
	if snap.Progress.FilesDone != 3 {
		t.Errorf("files done = %d, want 3", snap.Progress.FilesDone)
	}

	// One failing file must not prevent the good file's output.
	if _, err := os.Stat(filepath.Join(dir, "good_converted.script")); err != nil {
		t.Errorf("expected converted output, stat err = %v", err)
	}
}

func TestProcess_AllGood(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cell.urpx")
	if err := os.WriteFile(src, []byte(validProject), 0o644); err != nil {
		t.Fatal(err)
	}

	o := testOrchestrator(t)
	batch := NewBatch([]string{src}, dir, convert.ModeText)
	o.process(context.Background(), batch)

	if got := batch.Snapshot().Status; got != StatusCompleted {
		t.Errorf("status = %q, want %q", got, StatusCompleted)
	}
}

func TestProcess_AllFailed(t *testing.T) {
	dir := t.TempDir()
	o := testOrchestrator(t)
	batch := NewBatch([]string{filepath.Join(dir, "nope.urpx")}, dir, convert.ModeScript)
	o.process(context.Background(), batch)

	if got := batch.Snapshot().Status; got != StatusFailed {
		t.Errorf("status = %q, want %q", got, StatusFailed)
	}
}

func TestSubmitAndRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cell.urpx")
	if err := os.WriteFile(src, []byte(validProject), 0o644); err != nil {
		t.Fatal(err)
	}

	o := testOrchestrator(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	o.Start(ctx)

	batch := NewBatch([]string{src}, dir, convert.ModeScript)
	if err := o.Submit(batch); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if o.GetBatch(batch.ID) != batch {
		t.Error("submitted batch not retrievable by ID")
	}

	deadline := time.After(5 * time.Second)
	for {
		if s := batch.Snapshot().Status; s == StatusCompleted {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("batch never completed, status %q", batch.Snapshot().Status)
		case <-time.After(10 * time.Millisecond):
		}
	}

	o.Stop()
}

func TestSubmit_QueueFull(t *testing.T) {
	cfg := config.Config{WorkerCount: 1, MaxQueueSize: 1, BatchTTL: time.Hour}
	o := NewOrchestrator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	// Workers are not started, so the second submit finds a full queue.
	if err := o.Submit(NewBatch(nil, ".", convert.ModeScript)); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second := NewBatch(nil, ".", convert.ModeScript)
	if err := o.Submit(second); err == nil {
		t.Fatal("expected queue-full error")
	}
	if second.Snapshot().Status != StatusFailed {
		t.Errorf("status = %q, want %q", second.Snapshot().Status, StatusFailed)
	}
}

func TestBatchStore_Cleanup(t *testing.T) {
	store := NewBatchStore(10 * time.Millisecond)
	batch := NewBatch(nil, ".", convert.ModeScript)
	store.Put(batch)

	if store.Get(batch.ID) == nil {
		t.Fatal("expected batch before expiry")
	}
	time.Sleep(20 * time.Millisecond)
	store.Cleanup()
	if store.Get(batch.ID) != nil {
		t.Error("expected batch evicted after TTL")
	}
}
