package templating

import "testing"

func TestMinify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty document", "", ""},
		{"already minimal is identity", "<p>hi</p>", "<p>hi</p>"},
		{"leading indentation stripped", "  <div>\n\t\t<p>hi</p>\n  </div>", "<div>\n<p>hi</p>\n</div>"},
		{"blank line runs collapse", "<p>a</p>\n\n\n<p>b</p>", "<p>a</p>\n<p>b</p>"},
		{"carriage returns collapse too", "<p>a</p>\r\n<p>b</p>", "<p>a</p>\n<p>b</p>"},
		{"document trimmed", "  \n<p>hi</p>\n\n ", "<p>hi</p>"},
		{"comments removed", "<p>a</p><!-- note --><p>b</p>", "<p>a</p><p>b</p>"},
		{"multi-line comment removed", "<p>a</p><!--\nline one\nline two\n--><p>b</p>", "<p>a</p><p>b</p>"},
		{"unresolved tokens removed", "<p><!-- conent --></p>", "<p></p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Minify(tt.in); got != tt.want {
				t.Errorf("Minify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMinify_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"<p>hi</p>",
		"   <div>\n\n\n  <p>spaced</p>\n</div>  ",
		"\t<ul>\r\n\t\t<li>a</li>\r\n\r\n\t\t<li>b</li>\r\n\t</ul>\n",
	}
	for _, in := range inputs {
		once := Minify(in)
		if twice := Minify(once); twice != once {
			t.Errorf("Minify not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
