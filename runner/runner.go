package runner

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kasuganosora/behaviortree"
)

// Runner drives registered behavior trees at fixed tick intervals. Each tree
// ticks on its own goroutine; the delta passed to Update is the measured time
// between fires, so trees see wall-clock time even when a tick overruns.
type Runner struct {
	mu     sync.Mutex
	trees  map[string]*treeEntry
	logger *zap.Logger
	stopCh chan struct{}
}

type treeEntry struct {
	id     string
	tree   *behaviortree.Tree
	ticker  *time.Ticker
	stopCh  chan struct{}
	resetCh chan struct{}
	// debugLog throttles the per-tick debug line so a fast tree cannot
	// flood the log.
	debugLog rate.Sometimes
}

// New creates a Runner.
func New(logger *zap.Logger) *Runner {
	return &Runner{
		trees:  make(map[string]*treeEntry),
		stopCh: make(chan struct{}),
		logger: logger,
	}
}

// Add registers a tree to tick on a fixed interval. If a tree with the same
// name exists, it is replaced.
func (r *Runner) Add(name string, tree *behaviortree.Tree, interval time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Remove existing.
	if old, ok := r.trees[name]; ok {
		close(old.stopCh)
		delete(r.trees, name)
	}

	entry := &treeEntry{
		id:       uuid.NewString(),
		tree:     tree,
		ticker:   time.NewTicker(interval),
		stopCh:   make(chan struct{}),
		resetCh:  make(chan struct{}, 1),
		debugLog: rate.Sometimes{Interval: time.Second},
	}
	r.trees[name] = entry

	go r.run(name, entry)
	r.logger.Info("tree registered",
		zap.String("name", name),
		zap.String("instance", entry.id),
		zap.Duration("interval", interval))
}

func (r *Runner) run(name string, entry *treeEntry) {
	var (
		last = time.Now()
		prev behaviortree.Status
		seen bool
	)
	for {
		select {
		case now := <-entry.ticker.C:
			delta := now.Sub(last)
			last = now
			st := r.tick(name, entry, delta)
			if !seen || st != prev {
				r.logger.Info("tree status changed",
					zap.String("name", name),
					zap.String("instance", entry.id),
					zap.Stringer("status", st))
				prev, seen = st, true
			}
			entry.debugLog.Do(func() {
				r.logger.Debug("tree ticked",
					zap.String("name", name),
					zap.Duration("delta", delta),
					zap.Stringer("status", st))
			})
		case <-entry.resetCh:
			entry.tree.Reset()
			seen = false
			r.logger.Info("tree reset",
				zap.String("name", name),
				zap.String("instance", entry.id))
		case <-entry.stopCh:
			entry.ticker.Stop()
			return
		case <-r.stopCh:
			entry.ticker.Stop()
			return
		}
	}
}

// tick runs one Update with panic recovery. A panicking tree reports ERROR
// for that tick and keeps its slot.
func (r *Runner) tick(name string, entry *treeEntry, delta time.Duration) (st behaviortree.Status) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("tree tick panicked",
				zap.String("name", name),
				zap.String("instance", entry.id),
				zap.Any("recover", rec))
			st = behaviortree.StatusError
		}
	}()
	return entry.tree.Update(delta)
}

// Remove stops and unregisters a tree by name.
func (r *Runner) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.trees[name]; ok {
		close(entry.stopCh)
		delete(r.trees, name)
	}
}

// Reset asks a registered tree's tick loop to clear the tree's resumption
// and timing state. The reset happens on the tree's own goroutine, never
// concurrently with an Update.
func (r *Runner) Reset(name string) {
	r.mu.Lock()
	entry, ok := r.trees[name]
	r.mu.Unlock()
	if ok {
		select {
		case entry.resetCh <- struct{}{}:
		default:
		}
	}
}

// Stop stops all trees.
func (r *Runner) Stop() {
	select {
	case <-r.stopCh:
	default:
		close(r.stopCh)
	}
}

// ListTrees returns the names of all registered trees.
func (r *Runner) ListTrees() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.trees))
	for name := range r.trees {
		names = append(names, name)
	}
	return names
}
