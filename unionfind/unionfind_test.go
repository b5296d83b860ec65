package unionfind_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maldonov/algolab/unionfind"
)

func TestNew_Singletons(t *testing.T) {
	uf := unionfind.New("A", "B", "C")

	assert.Equal(t, 3, uf.Len())
	assert.Equal(t, 3, uf.Count())
	for _, e := range []string{"A", "B", "C"} {
		root, err := uf.Find(e)
		require.NoError(t, err)
		assert.Equal(t, e, root, "fresh element should be its own representative")
	}
}

func TestNew_DuplicatesRegisteredOnce(t *testing.T) {
	uf := unionfind.New("A", "A", "B")

	assert.Equal(t, 2, uf.Len())
	assert.Equal(t, 2, uf.Count())
}

func TestFind_UnknownElement(t *testing.T) {
	uf := unionfind.New("A")

	_, err := uf.Find("Z")
	assert.ErrorIs(t, err, unionfind.ErrUnknownElement)

	_, err = uf.Union("A", "Z")
	assert.ErrorIs(t, err, unionfind.ErrUnknownElement)

	_, err = uf.Connected("Z", "A")
	assert.ErrorIs(t, err, unionfind.ErrUnknownElement)
}

func TestUnion_ReportsMerge(t *testing.T) {
	uf := unionfind.New("A", "B", "C")

	united, err := uf.Union("A", "B")
	require.NoError(t, err)
	assert.True(t, united)

	// Same set now, in either argument order.
	united, err = uf.Union("B", "A")
	require.NoError(t, err)
	assert.False(t, united)

	assert.Equal(t, 2, uf.Count())
}

// TestConnected_Soundness checks the defining property: Find(a) == Find(b)
// iff a chain of unions connected a and b.
func TestConnected_Soundness(t *testing.T) {
	uf := unionfind.New("A", "B", "C", "D", "E")

	mustUnion := func(x, y string) {
		t.Helper()
		_, err := uf.Union(x, y)
		require.NoError(t, err)
	}
	mustUnion("A", "B")
	mustUnion("C", "D")

	check := func(x, y string, want bool) {
		t.Helper()
		got, err := uf.Connected(x, y)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Connected(%s,%s)", x, y)
	}
	check("A", "B", true)
	check("C", "D", true)
	check("A", "C", false)
	check("A", "E", false)

	// Transitivity through a chain: A~B, C~D, then B~C connects all four.
	mustUnion("B", "C")
	check("A", "D", true)
	check("A", "E", false)
	assert.Equal(t, 2, uf.Count())
}

func TestAdd_LateRegistration(t *testing.T) {
	uf := unionfind.New()
	uf.Add("X")
	uf.Add("Y")
	uf.Add("X") // no-op

	assert.Equal(t, 2, uf.Len())
	united, err := uf.Union("X", "Y")
	require.NoError(t, err)
	assert.True(t, united)
	assert.Equal(t, 1, uf.Count())
}

// TestLargeChain exercises path compression and rank balancing on a long
// union chain; every element must end up in one set.
func TestLargeChain(t *testing.T) {
	const n = 1000
	elements := make([]string, n)
	for i := range elements {
		elements[i] = fmt.Sprintf("V%d", i)
	}
	uf := unionfind.New(elements...)

	for i := 1; i < n; i++ {
		united, err := uf.Union(elements[i-1], elements[i])
		require.NoError(t, err)
		require.True(t, united)
	}

	assert.Equal(t, 1, uf.Count())
	first, err := uf.Find(elements[0])
	require.NoError(t, err)
	last, err := uf.Find(elements[n-1])
	require.NoError(t, err)
	assert.Equal(t, first, last)
}
