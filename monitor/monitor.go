package monitor

import humanize "github.com/dustin/go-humanize"

// Monitor keeps a fixed set of named counters for one tree. The set is
// decided at construction, so reads and writes need no lock.
type Monitor struct {
	name       string
	metricList map[string]*Metric
}

func NewMonitor(name string, nameList ...string) (m *Monitor) {
	m = &Monitor{
		name:       name,
		metricList: make(map[string]*Metric, len(nameList)),
	}

	for _, metricName := range nameList {
		m.metricList[metricName] = &Metric{name: metricName}
	}

	return
}

func (m *Monitor) Name() string {
	return m.name
}

func (m *Monitor) Add(name string, val uint64) (newValue uint64, exists bool) {
	_, exists = m.metricList[name]
	if exists {
		return m.metricList[name].Add(val), exists
	}

	return 0, exists
}

func (m *Monitor) Incr(name string) (newValue uint64, exists bool) {
	return m.Add(name, 1)
}

func (m *Monitor) Set(name string, val uint64) {
	if _, exists := m.metricList[name]; exists {
		m.metricList[name].Set(val)
	}
}

func (m *Monitor) GetMetric(name string) (metric *Metric, exists bool) {
	metric, exists = m.metricList[name]
	return
}

func (m *Monitor) Get(name string) (val uint64, exists bool) {
	if _, exists = m.metricList[name]; !exists {
		return
	}
	val = m.metricList[name].Get()
	return
}

// Stats returns every counter by name.
func (m *Monitor) Stats() map[string]uint64 {
	stats := make(map[string]uint64, len(m.metricList))
	for name, metric := range m.metricList {
		stats[name] = metric.Get()
	}
	return stats
}

// Humanize is Stats with comma grouped values, like "1,048,576".
func (m *Monitor) Humanize() map[string]string {
	stats := make(map[string]string, len(m.metricList))
	for name, metric := range m.metricList {
		stats[name] = humanize.Comma(int64(metric.Get()))
	}
	return stats
}
