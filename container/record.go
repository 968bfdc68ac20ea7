package container

import (
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v2"

	"github.com/grpc-boot/bstree"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is the structural snapshot of a tree, absent children are nil
// and omitted when encoded.
type Record[K constraints.Ordered] struct {
	Id    K          `json:"id" yaml:"id"`
	Left  *Record[K] `json:"left,omitempty" yaml:"left,omitempty"`
	Right *Record[K] `json:"right,omitempty" yaml:"right,omitempty"`
}

// JSON dumps the record with a 4-space indent.
func (r *Record[K]) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", bstree.JsonIndent)
}

func (r *Record[K]) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// Count is the number of nodes in the record.
func (r *Record[K]) Count() int {
	if r == nil {
		return 0
	}
	return 1 + r.Left.Count() + r.Right.Count()
}

// Height counts edges on the longest root-to-leaf path, a single node
// has height 0 and an empty record -1.
func (r *Record[K]) Height() int {
	if r == nil {
		return -1
	}

	lh, rh := r.Left.Height(), r.Right.Height()
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

// Keys lists keys in order.
func (r *Record[K]) Keys() []K {
	return r.appendkeys(make([]K, 0, r.Count()))
}

func (r *Record[K]) appendkeys(keys []K) []K {
	if r == nil {
		return keys
	}
	keys = r.Left.appendkeys(keys)
	keys = append(keys, r.Id)
	return r.Right.appendkeys(keys)
}
