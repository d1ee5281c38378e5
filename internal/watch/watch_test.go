package watch_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Tiliavir/trivial-payroll/internal/model"
	"github.com/Tiliavir/trivial-payroll/internal/payroll"
	"github.com/Tiliavir/trivial-payroll/internal/storage"
	"github.com/Tiliavir/trivial-payroll/internal/watch"
)

func TestWatcherReloadsOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timesheet.json")
	seen := make(chan int, 16)

	w := &watch.Watcher{
		Path:     path,
		Debounce: 10 * time.Millisecond,
		OnChange: func(ts model.Timesheet) error {
			seen <- len(ts.Employees)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case n := <-seen:
		if n != 0 {
			t.Fatalf("initial employees = %d, want 0", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no initial callback")
	}

	ts := model.Timesheet{Employees: []*model.EmployeeRecord{
		payroll.NewEmployeeRecord("Byron", "Poodle", "Mascot", 3),
	}}
	if err := storage.Save(path, ts); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for got := false; !got; {
		select {
		case n := <-seen:
			got = n == 1
		case <-deadline:
			t.Fatal("no callback after save")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
