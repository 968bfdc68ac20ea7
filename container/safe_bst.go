package container

import (
	"errors"
	"fmt"
	"sync"

	s "github.com/bnclabs/gosettings"
	errs "github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/grpc-boot/bstree"
	"github.com/grpc-boot/bstree/monitor"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
)

// SafeBst serializes access to a BstNode tree. Every insert holds the
// writer lock for the whole descent, snapshots hold the reader lock.
type SafeBst[K constraints.Ordered] struct {
	mutex   sync.RWMutex
	root    *BstNode[K]
	monitor *monitor.Monitor

	name      string
	logprefix string

	// settings
	rejectdups bool
	validate   bool
}

// NewSafeBst creates a tree whose root holds id. setts override
// Defaultsettings, nil is fine.
func NewSafeBst[K constraints.Ordered](name string, id K, setts s.Settings) *SafeBst[K] {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)

	t := &SafeBst[K]{
		root:       NewBstNode(id),
		monitor:    monitor.NewMonitor(name, bstree.MetricNames...),
		name:       name,
		logprefix:  fmt.Sprintf("BST [%s]", name),
		rejectdups: setts.Bool("duplicate.reject"),
		validate:   setts.Bool("validate"),
	}
	t.monitor.Set(bstree.MetricNodes, 1)

	infof("%v started with root %v, duplicate.reject:%v validate:%v\n",
		t.logprefix, id, t.rejectdups, t.validate)
	return t
}

func (t *SafeBst[K]) ID() string {
	return t.name
}

// Insert places id into the tree. It fails only with ErrDuplicateKey,
// when "duplicate.reject" is set, or a validation error, when "validate"
// is set.
func (t *SafeBst[K]) Insert(id K) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.monitor.Incr(bstree.MetricInserts)
	if t.root.insert(id) {
		t.monitor.Incr(bstree.MetricNodes)
	} else {
		t.monitor.Incr(bstree.MetricDuplicates)
		if t.rejectdups {
			errorf("%v rejected key %v\n", t.logprefix, id)
			return errs.Wrapf(ErrDuplicateKey, "%v key %v", t.logprefix, id)
		}
	}

	if t.validate {
		if err := t.root.Snapshot().Validate(); err != nil {
			errorf("%v %v\n", t.logprefix, err)
			return errs.Wrap(err, t.logprefix)
		}
	}
	return nil
}

func (t *SafeBst[K]) Snapshot() *Record[K] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	t.monitor.Incr(bstree.MetricSnapshots)
	return t.root.Snapshot()
}

// Stats returns the raw counters, their humanized form under "<name>.h"
// and the current height.
func (t *SafeBst[K]) Stats() map[string]interface{} {
	t.mutex.RLock()
	height := t.root.Snapshot().Height()
	t.mutex.RUnlock()

	stats := map[string]interface{}{"height": height}
	for name, value := range t.monitor.Stats() {
		stats[name] = value
	}
	for name, value := range t.monitor.Humanize() {
		stats[name+".h"] = value
	}
	return stats
}
