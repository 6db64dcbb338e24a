package value_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-headerval/value"
)

func TestParamsOrder(t *testing.T) {
	t.Parallel()

	var p value.Params
	p.Set("zz", "1")
	p.Set("aa", "2")
	p.Set("mm", "3")

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"zz", "aa", "mm"}, p.Keys())

	// resetting an existing name keeps its position
	p.Set("aa", "two")
	assert.Equal(t, []string{"zz", "aa", "mm"}, p.Keys())
	assert.Equal(t, "two", p.Get("aa"))

	p.Delete("zz")
	assert.Equal(t, []string{"aa", "mm"}, p.Keys())
	p.Delete("nope")
	assert.Equal(t, 2, p.Len())
}

func TestParamsLookup(t *testing.T) {
	t.Parallel()

	var p value.Params
	p.Set("empty", "")

	v, ok := p.Lookup("empty")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = p.Lookup("absent")
	assert.False(t, ok)
	assert.Equal(t, "", p.Get("absent"))
}

func TestParamsClone(t *testing.T) {
	t.Parallel()

	it := value.New("text/plain")
	it.Params.Set("charset", "utf-8")

	dup := it.Clone()
	dup.Params.Set("charset", "latin1")
	dup.Params.Set("extra", "x")

	assert.Equal(t, "utf-8", it.Param("charset"))
	assert.Equal(t, 1, it.Params.Len())
	assert.Equal(t, "latin1", dup.Param("charset"))
}

func TestParamsEqual(t *testing.T) {
	t.Parallel()

	a := params("x", "1", "y", "2")
	assert.True(t, a.Equal(params("x", "1", "y", "2")))
	assert.False(t, a.Equal(params("y", "2", "x", "1")), "order matters")
	assert.False(t, a.Equal(params("x", "1")))
	assert.True(t, value.Params{}.Equal(value.Params{}))
}

func TestParamsJSON(t *testing.T) {
	t.Parallel()

	it := value.New("text/html")
	it.Params.Set("zz", "1")
	it.Params.Set("aa", `say "hi"`)

	data, err := json.Marshal(it)
	require.NoError(t, err)
	assert.Equal(t,
		`{"value":"text/html","params":{"zz":"1","aa":"say \"hi\""}}`,
		string(data))

	var back value.Item
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, it, back)
	assert.Equal(t, []string{"zz", "aa"}, back.Params.Keys())
}

func TestParamsJSONErrors(t *testing.T) {
	t.Parallel()

	var p value.Params
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"k":42}`), &p))
}

func TestItemsJSONRoundTrip(t *testing.T) {
	t.Parallel()

	items, err := value.Parse(`text/html;level=1, b; q="0.2"`)
	require.NoError(t, err)

	data, err := json.Marshal(items)
	require.NoError(t, err)

	var back []value.Item
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, items, back)
}
