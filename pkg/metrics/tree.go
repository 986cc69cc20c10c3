package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/rbtree/pkg/rbtree"
)

var RotationMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rbtree_rotations_total",
		Help: "number of rotations performed by the tree",
	}, []string{"tree", "direction"})

var InsertFixupMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rbtree_insert_fixup_total",
		Help: "insert fix-up cases taken, by case",
	}, []string{"tree", "case"})

var DeleteFixupMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rbtree_delete_fixup_total",
		Help: "delete fix-up cases taken, by case",
	}, []string{"tree", "case"})

var TreeSizeMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "rbtree_size",
		Help: "number of keys in the tree",
	}, []string{"tree"})

var TreeHeightMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "rbtree_height",
		Help: "longest root-to-leaf path of the tree",
	}, []string{"tree"})

var TreeNodesInUseMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "rbtree_nodes_in_use",
		Help: "allocated and not yet released node slots, sentinel included",
	}, []string{"tree"})

// Observer counts the structural events of one tree into the fix-up and
// rotation counters.
type Observer struct {
	name string
}

func NewObserver(name string) *Observer {
	return &Observer{name: name}
}

func (o *Observer) OnRotate(dir rbtree.Direction) {
	RotationMetrics.WithLabelValues(o.name, dir.String()).Inc()
}

func (o *Observer) OnInsertFixup(c rbtree.InsertCase) {
	InsertFixupMetrics.WithLabelValues(o.name, c.String()).Inc()
}

func (o *Observer) OnDeleteFixup(c rbtree.DeleteCase) {
	DeleteFixupMetrics.WithLabelValues(o.name, c.String()).Inc()
}

// TreeStater is the part of a tree the gauges are read from.
type TreeStater interface {
	Len() int
	Height() int
	Stats() rbtree.RBTreeStats
}

// UpdateTreeMetrics sets the gauges of the named tree. It must be called
// from the goroutine that owns the tree.
func UpdateTreeMetrics(name string, tree TreeStater) {
	labels := prometheus.Labels{"tree": name}
	TreeSizeMetrics.With(labels).Set(float64(tree.Len()))
	TreeHeightMetrics.With(labels).Set(float64(tree.Height()))
	TreeNodesInUseMetrics.With(labels).Set(float64(tree.Stats().InUse()))
}

func init() {
	prometheus.MustRegister(
		RotationMetrics,
		InsertFixupMetrics,
		DeleteFixupMetrics,
		TreeSizeMetrics,
		TreeHeightMetrics,
		TreeNodesInUseMetrics,
	)
}
