package templating

import "testing"

func TestRenderIf(t *testing.T) {
	vm := ViewModel{
		"show": true,
		"hide": false,
		"zero": 0,
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty document", "", ""},
		{"no spans is identity", "<p>plain</p>", "<p>plain</p>"},
		{
			"truthy key keeps inner content",
			"<!-- renderIf(show); --><p>hi</p><!-- endIf(); -->",
			"<p>hi</p>",
		},
		{
			"falsy key drops whole span",
			"a<!-- renderIf(hide); --><p>hi</p><!-- endIf(); -->b",
			"ab",
		},
		{
			"absent key drops whole span",
			"<!-- renderIf(missing); -->gone<!-- endIf(); -->",
			"",
		},
		{
			"zero is falsy",
			"<!-- renderIf(zero); -->gone<!-- endIf(); -->",
			"",
		},
		{
			"independent spans evaluate independently",
			"<!-- renderIf(show); -->A<!-- endIf(); --><!-- renderIf(hide); -->B<!-- endIf(); --><!-- renderIf(show); -->C<!-- endIf(); -->",
			"AC",
		},
		{
			"whitespace and missing semicolon tolerated",
			"<!--renderIf( show )--><b>x</b><!--  endIf( ) ;  -->",
			"<b>x</b>",
		},
		{
			"multi-line inner content",
			"<!-- renderIf(show); -->\n<p>\nhi\n</p>\n<!-- endIf(); -->",
			"\n<p>\nhi\n</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderIf(tt.in, vm); got != tt.want {
				t.Errorf("RenderIf(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Nesting is unsupported: an inner renderIf pairs with the nearest
// endIf(), and whatever delimiter is left over passes through verbatim.
func TestRenderIf_NestedPairsWithNearestEnd(t *testing.T) {
	vm := ViewModel{"outer": true, "inner": true}
	in := "A<!-- renderIf(outer); -->x<!-- renderIf(inner); -->y<!-- endIf(); -->z<!-- endIf(); -->B"
	want := "Ax<!-- renderIf(inner); -->yz<!-- endIf(); -->B"
	if got := RenderIf(in, vm); got != want {
		t.Errorf("RenderIf nested = %q, want %q", got, want)
	}
}
