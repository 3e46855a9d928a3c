package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"typstfmt/config"
)

var formatCases = []struct {
	name     string
	input    string
	expected string
}{
	{
		name:     "code let binding",
		input:    "let x=1",
		expected: "let x = 1\n",
	},
	{
		name:     "already formatted",
		input:    "let x = 1\n",
		expected: "let x = 1\n",
	},
	{
		name:     "markup let with extra spaces",
		input:    "#let   title   =   \"Report\"\n",
		expected: "#let   title = \"Report\"\n",
	},
	{
		name:     "function binding",
		input:    "#let f(a, b: 2)=a + b\n",
		expected: "#let f(a, b: 2) = a + b\n",
	},
	{
		name:     "comparison is not a binding",
		input:    "#let same = a == b\n#let ok = a<=b\n",
		expected: "#let same = a == b\n#let ok = a<=b\n",
	},
	{
		name:     "equals inside string is ignored",
		input:    "#let s = \"a=b\"\n",
		expected: "#let s = \"a=b\"\n",
	},
	{
		name:     "binding without value",
		input:    "let x=   \n",
		expected: "let x =\n",
	},
	{
		name:     "non let lines untouched",
		input:    "= Heading\nSome text=more text\n",
		expected: "= Heading\nSome text=more text\n",
	},
	{
		name:     "trailing whitespace",
		input:    "hello   \nworld\t\n",
		expected: "hello\nworld\n",
	},
	{
		name:     "crlf line endings",
		input:    "a\r\nb\r\n",
		expected: "a\nb\n",
	},
	{
		name:     "doubled carriage return",
		input:    "a\r\r\n",
		expected: "a\n",
	},
	{
		name:     "carriage return before trailing spaces",
		input:    "a\r \n",
		expected: "a\n",
	},
	{
		name:     "let binding with doubled carriage return",
		input:    "let x=1\r\r\n",
		expected: "let x = 1\n",
	},
	{
		name:     "carriage returns in raw block",
		input:    "```\r\nx\r \r\n```\r\n",
		expected: "```\nx\r \n```\n",
	},
	{
		name:     "leading tabs expand",
		input:    "#list(\n\t[a],\n\t\t[b],\n)\n",
		expected: "#list(\n  [a],\n    [b],\n)\n",
	},
	{
		name:     "blank line runs collapse",
		input:    "a\n\n\n\nb\n",
		expected: "a\n\nb\n",
	},
	{
		name:     "leading and trailing blank lines dropped",
		input:    "\n\n a\n\n\n",
		expected: " a\n",
	},
	{
		name:     "raw block kept verbatim",
		input:    "```rust\n\tlet x=1;   \n\n\n\n```\nlet y=2\n",
		expected: "```rust\n\tlet x=1;   \n\n\n\n```\nlet y = 2\n",
	},
	{
		name:     "inline raw does not open a block",
		input:    "```let a=1``` text\nlet b=2\n",
		expected: "```let a=1``` text\nlet b = 2\n",
	},
	{
		name:     "empty document",
		input:    "",
		expected: "",
	},
	{
		name:     "only blank lines",
		input:    "\n \n\t\n",
		expected: "",
	},
	{
		name:     "comment after let",
		input:    "#let x // a=b\n",
		expected: "#let x // a=b\n",
	},
}

func TestFormat(t *testing.T) {
	cfg := config.Default()

	for _, tt := range formatCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input, cfg))
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	configs := map[string]*config.Config{
		"default":    config.Default(),
		"wide":       {IndentSpace: 4, MaxBlankLines: 2, FinalNewline: true},
		"no newline": {IndentSpace: 0, MaxBlankLines: 0, FinalNewline: false},
	}

	for cfgName, cfg := range configs {
		for _, tt := range formatCases {
			t.Run(cfgName+"/"+tt.name, func(t *testing.T) {
				once := Format(tt.input, cfg)
				assert.Equal(t, once, Format(once, cfg))
			})
		}
	}
}

func TestFormatConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		input    string
		expected string
	}{
		{
			name:     "indent width",
			cfg:      &config.Config{IndentSpace: 4, MaxBlankLines: 1, FinalNewline: true},
			input:    "\ta\n",
			expected: "    a\n",
		},
		{
			name:     "keep two blank lines",
			cfg:      &config.Config{IndentSpace: 2, MaxBlankLines: 2, FinalNewline: true},
			input:    "a\n\n\n\n\nb\n",
			expected: "a\n\n\nb\n",
		},
		{
			name:     "no blank lines",
			cfg:      &config.Config{IndentSpace: 2, MaxBlankLines: 0, FinalNewline: true},
			input:    "a\n\nb\n",
			expected: "a\nb\n",
		},
		{
			name:     "no final newline",
			cfg:      &config.Config{IndentSpace: 2, MaxBlankLines: 1, FinalNewline: false},
			input:    "let x=1\n",
			expected: "let x = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input, tt.cfg))
		})
	}
}

func TestBindingIndex(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"let x=1", 5},
		{"let x = 1", 6},
		{"let f(a: 1)=a", 11},
		{"let x == y", -1},
		{"let x => y", -1},
		{"let x != y", -1},
		{`let "=" x`, -1},
		{"let x // =", -1},
		{"let x", -1},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, bindingIndex(tt.line))
		})
	}
}

func TestExpandIndent(t *testing.T) {
	assert.Equal(t, "    x", expandIndent("\t\tx", 2))
	assert.Equal(t, "   x", expandIndent(" \tx", 2))
	assert.Equal(t, "x\ty", expandIndent("x\ty", 2))
	assert.Equal(t, "x", expandIndent("\tx", 0))
}
