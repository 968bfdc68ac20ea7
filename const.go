package bstree

const (
	// JsonIndent matches the 4-space dump of the structural snapshot.
	JsonIndent = "    "
)

// metric names kept by SafeBst
const (
	MetricInserts    = "n_inserts"
	MetricNodes      = "n_nodes"
	MetricDuplicates = "n_duplicates"
	MetricSnapshots  = "n_snapshots"
)

var MetricNames = []string{
	MetricInserts,
	MetricNodes,
	MetricDuplicates,
	MetricSnapshots,
}
