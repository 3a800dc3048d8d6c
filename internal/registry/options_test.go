package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	opts := Options{"indent": "  ", "header": false, "width": 4, "delimiter": ";", "bad": 1.5}

	s, err := opts.String("indent", "")
	require.NoError(t, err)
	assert.Equal(t, "  ", s)

	b, err := opts.Bool("header", true)
	require.NoError(t, err)
	assert.False(t, b)

	n, err := opts.Int("width", 2)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	r, err := opts.Rune("delimiter", ',')
	require.NoError(t, err)
	assert.Equal(t, ';', r)

	s, err = Options(nil).String("missing", "def")
	require.NoError(t, err)
	assert.Equal(t, "def", s)

	_, err = opts.Int("bad", 0)
	assert.Error(t, err)
	_, err = opts.Bool("indent", false)
	assert.Error(t, err)
	_, err = Options{"delimiter": "ab"}.Rune("delimiter", ',')
	assert.Error(t, err)
}

func TestOptionsIndent(t *testing.T) {
	for name, tc := range map[string]struct {
		opts Options
		want string
	}{
		"unset":  {Options{}, "\t"},
		"string": {Options{"indent": "  "}, "  "},
		"int":    {Options{"indent": 3}, "   "},
		"int64":  {Options{"indent": int64(4)}, "    "},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := tc.opts.Indent("indent", "\t")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := Options{"indent": -1}.Indent("indent", "")
	assert.Error(t, err)
	_, err = Options{"indent": 1.5}.Indent("indent", "")
	assert.Error(t, err)
}
