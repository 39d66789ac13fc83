package client

import (
	"reflect"
	"testing"
)

func TestIDList_Shapes(t *testing.T) {
	tests := []struct {
		name   string
		list   IDList
		empty  bool
		values []string
	}{
		{"one numeric", One(15), false, []string{"15"}},
		{"many numeric", Many(15, 2016, 15), false, []string{"15", "2016", "15"}},
		{"many empty", Many(), true, []string{}},
		{"one name", OneName("Guardian"), false, []string{"Guardian"}},
		{"names", Names("Guardian", "Necromancer"), false, []string{"Guardian", "Necromancer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.list.Values(); len(got) != len(tt.values) {
				t.Errorf("Values() = %v, want %v", got, tt.values)
			} else {
				for i := range got {
					if got[i] != tt.values[i] {
						t.Errorf("Values()[%d] = %v, want %v", i, got[i], tt.values[i])
					}
				}
			}
		})
	}
}

func TestSortIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "numeric sorts numerically",
			in:   []string{"2016", "15", "100"},
			want: []string{"15", "100", "2016"},
		},
		{
			name: "strings sort lexically",
			in:   []string{"Necromancer", "Guardian"},
			want: []string{"Guardian", "Necromancer"},
		},
		{
			name: "mixed falls back to lexical",
			in:   []string{"38-11", "38-2"},
			want: []string{"38-11", "38-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := append([]string(nil), tt.in...)
			sortIDs(ids)
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("sortIDs(%v) = %v, want %v", tt.in, ids, tt.want)
			}
		})
	}
}
