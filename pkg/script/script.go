package script

import (
	"github.com/henderiw/rangelist/pkg/rangelist"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
)

// Step is a single operation. Exactly one of Add and Remove must be set;
// the value is validated with rangelist.RangeOf.
type Step struct {
	Add    any `yaml:"add,omitempty"`
	Remove any `yaml:"remove,omitempty"`
}

func AddStep(r rangelist.Range) Step    { return Step{Add: r} }
func RemoveStep(r rangelist.Range) Step { return Step{Remove: r} }

// Resolve returns the operation of s and its validated range.
func (s Step) Resolve() (Op, rangelist.Range, error) {
	var op Op
	var v any
	switch {
	case s.Add != nil && s.Remove != nil:
		return "", rangelist.Range{}, errors.Wrap(rangelist.ErrInvalidArgument, "step has both add and remove")
	case s.Add != nil:
		op, v = OpAdd, s.Add
	case s.Remove != nil:
		op, v = OpRemove, s.Remove
	default:
		return "", rangelist.Range{}, errors.Wrap(rangelist.ErrInvalidArgument, "step has neither add nor remove")
	}
	r, err := rangelist.RangeOf(v)
	if err != nil {
		return "", rangelist.Range{}, errors.Wrapf(err, "%s", op)
	}
	return op, r, nil
}

type Script []Step

// StepFunc observes the list after step i has been applied.
type StepFunc func(i int, op Op, r rangelist.Range, l *rangelist.RangeList)

func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "cannot decode script")
	}
	return s, nil
}

// Validate checks every step and returns all failures as one aggregate.
func (s Script) Validate() error {
	var errs []error
	for i, step := range s {
		if _, _, err := step.Resolve(); err != nil {
			errs = append(errs, errors.Wrapf(err, "step %d", i))
		}
	}
	return utilerrors.NewAggregate(errs)
}

// Apply runs the steps against l in order. The whole script is validated
// first, so l is not touched when any step is invalid.
func (s Script) Apply(l *rangelist.RangeList, fn StepFunc) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for i, step := range s {
		op, r, _ := step.Resolve()
		var err error
		switch op {
		case OpAdd:
			err = l.Add(r)
		case OpRemove:
			err = l.Remove(r)
		}
		if err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
		if fn != nil {
			fn(i, op, r, l)
		}
	}
	return nil
}
