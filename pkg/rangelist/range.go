package rangelist

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Range is the half-open integer interval [Begin, End).
type Range struct {
	Begin int64
	End   int64
}

func RangeFrom(begin, end int64) Range {
	return Range{Begin: begin, End: end}
}

// IsEmpty reports whether r covers no integer at all.
func (r Range) IsEmpty() bool { return r.Begin == r.End }

// IsValid reports whether r is ordered.
func (r Range) IsValid() bool { return r.Begin <= r.End }

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Begin, r.End)
}

func (r Range) validate() error {
	if !r.IsValid() {
		return errors.Wrapf(ErrInvalidArgument, "range %s: begin is greater than end", r)
	}
	return nil
}

// ParseRange parses the text forms "[b, e)", "b-e" and "b,e".
func ParseRange(s string) (Range, error) {
	var r Range
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "[") {
		if !strings.HasSuffix(t, ")") {
			return r, errors.Wrapf(ErrInvalidArgument, "range %q: missing closing ')'", s)
		}
		t = t[1 : len(t)-1]
	}

	var from, to string
	if c := strings.IndexByte(t, ','); c != -1 {
		from, to = t[:c], t[c+1:]
	} else {
		// skip a leading sign so "-5--1" splits on the second hyphen
		h := -1
		if len(t) > 1 {
			h = strings.IndexByte(t[1:], '-')
		}
		if h == -1 {
			return r, errors.Wrapf(ErrInvalidArgument, "no separator in range %q", s)
		}
		from, to = t[:h+1], t[h+2:]
	}

	begin, err := strconv.ParseInt(strings.TrimSpace(from), 10, 64)
	if err != nil {
		return r, errors.Wrapf(ErrInvalidArgument, "invalid begin %q in range %q", from, s)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(to), 10, 64)
	if err != nil {
		return r, errors.Wrapf(ErrInvalidArgument, "invalid end %q in range %q", to, s)
	}
	r = RangeFrom(begin, end)
	return r, r.validate()
}

// RangeOf converts a dynamically typed value, typically decoded from YAML
// or JSON, into a Range. v must be a Range, or a list or array of exactly
// two integer values. Floats are accepted only when they hold an integral
// value.
func RangeOf(v any) (Range, error) {
	if r, ok := v.(Range); ok {
		return r, r.validate()
	}

	fld := field.NewPath("range")
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return Range{}, invalid(field.ErrorList{field.Invalid(fld, v, "must be a list of two integers")})
	}
	if rv.Len() != 2 {
		return Range{}, invalid(field.ErrorList{field.Invalid(fld, v, fmt.Sprintf("must have exactly 2 elements, got %d", rv.Len()))})
	}

	var bounds [2]int64
	var errs field.ErrorList
	for i := range bounds {
		elem := rv.Index(i).Interface()
		n, ok := toInt64(elem)
		if !ok {
			errs = append(errs, field.Invalid(fld.Index(i), elem, "must be an integer"))
			continue
		}
		bounds[i] = n
	}
	if len(errs) > 0 {
		return Range{}, invalid(errs)
	}

	r := RangeFrom(bounds[0], bounds[1])
	return r, r.validate()
}

func invalid(errs field.ErrorList) error {
	return errors.Wrap(ErrInvalidArgument, errs.ToAggregate().Error())
}

func toInt64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.Trunc(f) != f || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}
