package pagerange_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lvillar/pdfpages/pagerange"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		spec string
		want []int
	}{
		{"1", []int{1}},
		{"5", []int{5}},
		{"1-3", []int{1, 2, 3}},
		{"7-7", []int{7}},
		{"1-3,5,7-9", []int{1, 2, 3, 5, 7, 8, 9}},
		{"3,1-2,1", []int{3, 1, 2, 1}},
		{"1,1", []int{1, 1}},
		{"2,1", []int{2, 1}},
		{" 1 - 3 , 5 ", []int{1, 2, 3, 5}},
		{"\t2-4\n", []int{2, 3, 4}},
	}

	for _, tt := range tests {
		got, err := pagerange.Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.spec, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	for _, spec := range []string{"", "   ", "\t\n"} {
		got, err := pagerange.Parse(spec)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", spec, err)
		}
		if len(got) != 0 {
			t.Errorf("Parse(%q) = %v, want empty", spec, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"1--2", pagerange.ErrSyntax},
		{"1,,2", pagerange.ErrSyntax},
		{"1, ,2", pagerange.ErrSyntax},
		{",1", pagerange.ErrSyntax},
		{"1,", pagerange.ErrSyntax},
		{"-3", pagerange.ErrSyntax},
		{"3-", pagerange.ErrSyntax},
		{"a-3", pagerange.ErrValue},
		{"1-b", pagerange.ErrValue},
		{"x", pagerange.ErrValue},
		{"0", pagerange.ErrValue},
		{"0-2", pagerange.ErrValue},
		{"+3", pagerange.ErrValue},
		{"1.5", pagerange.ErrValue},
		{"5-2", pagerange.ErrOrder},
	}

	for _, tt := range tests {
		got, err := pagerange.Parse(tt.spec)
		if err == nil {
			t.Errorf("Parse(%q) = %v, want error %v", tt.spec, got, tt.want)
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	first, err := pagerange.Parse("3,1-2,1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := pagerange.Parse("3,1-2,1")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("parse not deterministic: %v vs %v", first, again)
		}
	}
}
