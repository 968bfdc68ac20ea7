package monitor

import "sync/atomic"

type Metric struct {
	name  string
	value uint64
}

func (m *Metric) Name() string {
	return m.name
}

func (m *Metric) Add(val uint64) (newValue uint64) {
	return atomic.AddUint64(&m.value, val)
}

func (m *Metric) Incr() (newValue uint64) {
	return m.Add(1)
}

func (m *Metric) Set(val uint64) {
	atomic.StoreUint64(&m.value, val)
}

func (m *Metric) Get() (val uint64) {
	return atomic.LoadUint64(&m.value)
}
