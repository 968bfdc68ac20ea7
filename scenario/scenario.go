// Package scenario holds named insertion orders for building trees, the
// first key of an order becomes the root.
package scenario

import (
	"errors"
	"path/filepath"
	"strings"

	errs "github.com/pkg/errors"

	"github.com/grpc-boot/bstree"
	"github.com/grpc-boot/bstree/container"
)

var (
	ErrEmptyScenario = errors.New("scenario has no keys")
	ErrUnknownFormat = errors.New("unknown scenario file format")
)

type Scenario struct {
	Name string `json:"name" yaml:"name"`
	Keys []int  `json:"keys" yaml:"keys"`
}

var (
	Balanced     = Scenario{Name: "balanced", Keys: []int{4, 2, 6, 1, 3, 5, 7}}
	SemiBalanced = Scenario{Name: "semi-balanced", Keys: []int{4, 3, 5, 2, 6, 1, 7}}
	WorstMin     = Scenario{Name: "worst-min", Keys: []int{1, 2, 3, 4, 5, 6, 7}}
	WorstMax     = Scenario{Name: "worst-max", Keys: []int{7, 6, 5, 4, 3, 2, 1}}
)

func Builtin() []Scenario {
	return []Scenario{Balanced, SemiBalanced, WorstMin, WorstMax}
}

// Build creates a root from the first key and inserts the rest in order.
func (sc Scenario) Build() (*container.BstNode[int], error) {
	if len(sc.Keys) == 0 {
		return nil, errs.Wrapf(ErrEmptyScenario, "scenario %q", sc.Name)
	}

	root := container.NewBstNode(sc.Keys[0])
	for _, key := range sc.Keys[1:] {
		root.Insert(key)
	}
	return root, nil
}

// Load reads a list of scenarios from a .yaml, .yml or .json file.
func Load(filePath string) (scenarios []Scenario, err error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		err = bstree.Yaml(filePath, &scenarios)
	case ".json":
		err = bstree.Json(filePath, &scenarios)
	default:
		return nil, errs.Wrapf(ErrUnknownFormat, "%s", filePath)
	}

	if err != nil {
		return nil, errs.Wrapf(err, "load %s", filePath)
	}
	return scenarios, nil
}
