package diag_test

import (
	"errors"
	"testing"

	"github.com/metaphox/tiger-lang/diag"
)

func TestList_ReportKeepsOrder(t *testing.T) {
	var l diag.List
	l.Report("a.tig", 3, 1, "expected 'then'")
	l.Report("a.tig", 1, 7, "expected )")

	if l.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", l.Len())
	}
	if l[0].Line != 3 || l[1].Line != 1 {
		t.Errorf("report order not kept: %v", l)
	}
}

func TestList_Sort(t *testing.T) {
	l := diag.List{
		{File: "b.tig", Line: 1, Col: 1, Msg: "x"},
		{File: "a.tig", Line: 2, Col: 5, Msg: "y"},
		{File: "a.tig", Line: 2, Col: 1, Msg: "z"},
	}
	l.Sort()
	want := []string{"a.tig:2:1: z", "a.tig:2:5: y", "b.tig:1:1: x"}
	for i, w := range want {
		if got := l[i].Error(); got != w {
			t.Errorf("entry %d: got %q, want %q", i, got, w)
		}
	}
}

func TestList_Error(t *testing.T) {
	tests := []struct {
		name string
		list diag.List
		want string
	}{
		{"empty", nil, "no errors"},
		{"one", diag.List{{Line: 1, Col: 2, Msg: "expected end"}}, "1:2: expected end"},
		{
			"many",
			diag.List{
				{File: "f.tig", Line: 1, Col: 2, Msg: "expected end"},
				{File: "f.tig", Line: 4, Col: 1, Msg: "expected expression"},
				{File: "f.tig", Line: 5, Col: 1, Msg: "expected expression"},
			},
			"f.tig:1:2: expected end (and 2 more errors)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestList_Err(t *testing.T) {
	var l diag.List
	if l.Err() != nil {
		t.Fatal("empty list should give a nil error")
	}
	l.Report("", 1, 1, "expected identifier")
	err := l.Err()
	if err == nil {
		t.Fatal("expected a non-nil error")
	}
	var got diag.List
	if !errors.As(err, &got) || len(got) != 1 {
		t.Errorf("errors.As did not recover the list: %v", err)
	}
}
