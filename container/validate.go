package container

import "github.com/pkg/errors"

// Validate checks the strict search-tree order of the whole record: every
// key under Left is less than Id and every key under Right is greater.
func (r *Record[K]) Validate() error {
	if r == nil {
		return nil
	}
	_, _, err := r.validate(0)
	return err
}

// validate returns the smallest and largest key of a non-nil subtree.
func (r *Record[K]) validate(depth int) (min, max K, err error) {
	min, max = r.Id, r.Id

	if r.Left != nil {
		var lmin, lmax K
		if lmin, lmax, err = r.Left.validate(depth + 1); err != nil {
			return min, max, err
		}
		if !(lmax < r.Id) {
			fmsg := "validate(): depth %v, left subtree key %v is not less than %v"
			return min, max, errors.Errorf(fmsg, depth, lmax, r.Id)
		}
		min = lmin
	}

	if r.Right != nil {
		var rmin, rmax K
		if rmin, rmax, err = r.Right.validate(depth + 1); err != nil {
			return min, max, err
		}
		if !(rmin > r.Id) {
			fmsg := "validate(): depth %v, right subtree key %v is not greater than %v"
			return min, max, errors.Errorf(fmsg, depth, rmin, r.Id)
		}
		max = rmax
	}
	return min, max, nil
}
