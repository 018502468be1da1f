package edgelist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lanmesh/core"
	"github.com/katalvlaran/lanmesh/edgelist"
)

func TestParse_NilReader(t *testing.T) {
	g, err := edgelist.Parse(nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, edgelist.ErrNilReader)
}

func TestParse_Basic(t *testing.T) {
	in := "ka-ta\nta-de\nde-co\n"
	g, err := edgelist.Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("ta", "ka"), "edges must load symmetrically")
}

func TestParse_TrimsAndSkipsBlank(t *testing.T) {
	in := "  a-b  \n\n\t\nb-c\n"
	g, err := edgelist.Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"no separator", "ab\n"},
		{"empty left", "-b\n"},
		{"empty right", "a-\n"},
		{"three endpoints", "a-b-c\n"},
		{"bare separator", "-\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := edgelist.Parse(strings.NewReader(tc.in))
			assert.Nil(t, g)
			assert.ErrorIs(t, err, edgelist.ErrMalformedEdge)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestParse_FailFastReportsLine(t *testing.T) {
	in := "a-b\nb-c\nbroken\nc-d\n"
	g, err := edgelist.Parse(strings.NewReader(in))
	assert.Nil(t, g, "no partial result on malformed input")
	assert.ErrorIs(t, err, edgelist.ErrMalformedEdge)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParse_SelfLoopRejected(t *testing.T) {
	g, err := edgelist.Parse(strings.NewReader("aa-aa\n"))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestParse_DuplicateRecords(t *testing.T) {
	in := "a-b\nb-a\na-b\n"
	g, err := edgelist.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestParse_CustomSeparator(t *testing.T) {
	g, err := edgelist.Parse(strings.NewReader("a=>b\nb=>c\n"), edgelist.WithSeparator("=>"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("a", "b"))
}

func TestParse_EmptySeparatorOption(t *testing.T) {
	g, err := edgelist.Parse(strings.NewReader("a-b\n"), edgelist.WithSeparator(""))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, edgelist.ErrOptionViolation)
}

func TestParseLines(t *testing.T) {
	g, err := edgelist.ParseLines([]string{"a-b", "", "b-c"})
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	g, err = edgelist.ParseLines([]string{"a-b", "oops"})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, edgelist.ErrMalformedEdge)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse_EmptyInputYieldsEmptyGraph(t *testing.T) {
	g, err := edgelist.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}
