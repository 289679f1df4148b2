package rangelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		in          string
		want        Range
		expectedErr bool
	}{
		"Bracket":       {in: "[1, 5)", want: Range{1, 5}},
		"Hyphen":        {in: "10-20", want: Range{10, 20}},
		"Comma":         {in: " 3 , 4 ", want: Range{3, 4}},
		"Negative":      {in: "-5--1", want: Range{-5, -1}},
		"NegativeComma": {in: "[-5, 2)", want: Range{-5, 2}},
		"Empty":         {in: "7-7", want: Range{7, 7}},
		"NoSeparator":   {in: "12", expectedErr: true},
		"NoClose":       {in: "[1, 5", expectedErr: true},
		"NotANumber":    {in: "a-5", expectedErr: true},
		"Inverted":      {in: "9-3", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := ParseRange(tc.in)
			if tc.expectedErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestRangeOf(t *testing.T) {
	cases := map[string]struct {
		in          any
		want        Range
		expectedErr bool
	}{
		"Range":         {in: Range{1, 2}, want: Range{1, 2}},
		"AnySlice":      {in: []any{1, 5}, want: Range{1, 5}},
		"IntSlice":      {in: []int{0, 3}, want: Range{0, 3}},
		"Array":         {in: [2]int64{4, 9}, want: Range{4, 9}},
		"IntegralFloat": {in: []any{1.0, 2.0}, want: Range{1, 2}},
		"Uint":          {in: []uint8{3, 4}, want: Range{3, 4}},
		"String":        {in: "not an array", expectedErr: true},
		"Number":        {in: 123, expectedErr: true},
		"Map":           {in: map[string]any{"name": "john"}, expectedErr: true},
		"Nil":           {in: nil, expectedErr: true},
		"InvalidRange":  {in: Range{5, 1}, expectedErr: true},
		"TooLong":       {in: []int{1, 2, 3}, expectedErr: true},
		"TooShort":      {in: []int{1}, expectedErr: true},
		"StringElem":    {in: []any{1, "a"}, expectedErr: true},
		"FirstString":   {in: []any{"str", 3}, expectedErr: true},
		"NestedList":    {in: []any{[]int{1, 2}, 3}, expectedErr: true},
		"MapElem":       {in: []any{3, map[string]any{"name": "john"}}, expectedErr: true},
		"Fraction":      {in: []any{1.5, 3}, expectedErr: true},
		"Inverted":      {in: []any{9, 3}, expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := RangeOf(tc.in)
			if tc.expectedErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "[1, 5)", RangeFrom(1, 5).String())
	assert.True(t, RangeFrom(3, 3).IsEmpty())
	assert.False(t, RangeFrom(4, 3).IsValid())
}
