package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-headerval/value"
)

func TestBuildBareTokens(t *testing.T) {
	t.Parallel()

	s, err := value.Build([]value.Item{
		{Value: "text/html"},
		{Value: "application/json"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "text/html, application/json", s)
}

func TestBuildParamQuotingDefault(t *testing.T) {
	t.Parallel()

	// parameter values are quoted by default, primary values are not
	s, err := value.Build([]value.Item{
		{Value: "text/html", Params: params("level", "1")},
	})
	assert.NoError(t, err)
	assert.Equal(t, `text/html; level="1"`, s)
}

func TestBuildMinimalQuoting(t *testing.T) {
	t.Parallel()

	s, err := value.Build([]value.Item{
		{Value: "text/html", Params: params("level", "1", "title", "hi there")},
	}, value.MinimalQuoting())
	assert.NoError(t, err)
	assert.Equal(t, `text/html; level=1; title="hi there"`, s)
}

func TestBuildQuotesWhenNeeded(t *testing.T) {
	t.Parallel()

	s, err := value.Build([]value.Item{{Value: "has space"}})
	assert.NoError(t, err)
	assert.Equal(t, `"has space"`, s)

	// an empty value only has a quoted form
	s, err = value.Build([]value.Item{{Value: ""}})
	assert.NoError(t, err)
	assert.Equal(t, `""`, s)

	s, err = value.Build([]value.Item{{Value: `say "hi" \o/`}})
	assert.NoError(t, err)
	assert.Equal(t, `"say \"hi\" \\o/"`, s)
}

func TestBuildSortParams(t *testing.T) {
	t.Parallel()

	items := []value.Item{
		{Value: "a", Params: params("zz", "1", "mm", "2", "aa", "3")},
	}

	s, err := value.Build(items, value.MinimalQuoting())
	assert.NoError(t, err)
	assert.Equal(t, "a; zz=1; mm=2; aa=3", s)

	s, err = value.Build(items, value.MinimalQuoting(), value.SortParams())
	assert.NoError(t, err)
	assert.Equal(t, "a; aa=3; mm=2; zz=1", s)
}

func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	s, err := value.Build(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestBuildMutatedItems(t *testing.T) {
	t.Parallel()

	// parse, tweak, rebuild: the builder must not assume its input came
	// from the parser untouched
	items, err := value.Parse("text/html;level=1")
	assert.NoError(t, err)

	items[0].Params.Set("level", "2")
	items[0].Params.Set("charset", "utf-8")

	s, err := value.Build(items, value.MinimalQuoting())
	assert.NoError(t, err)
	assert.Equal(t, "text/html; level=2; charset=utf-8", s)
}

func TestBuildRejectsUnrepresentable(t *testing.T) {
	t.Parallel()

	_, err := value.Build([]value.Item{{Value: "a\x00b"}})
	assert.ErrorIs(t, err, value.ErrIllegalCharacter)

	_, err = value.Build([]value.Item{
		{Value: "a", Params: params("k", "line\nbreak")},
	})
	assert.ErrorIs(t, err, value.ErrIllegalCharacter)

	// parameter names have no quoted form, so they must be tokens
	_, err = value.Build([]value.Item{
		{Value: "a", Params: params("bad key", "v")},
	})
	assert.ErrorIs(t, err, value.ErrIllegalCharacter)
}

func TestEscapeToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "simple", value.EscapeToken("simple"))
	assert.Equal(t, `"has space"`, value.EscapeToken("has space"))
	assert.Equal(t, `""`, value.EscapeToken(""))
	assert.Equal(t, `"a=b"`, value.EscapeToken("a=b"))
	assert.Equal(t, `"say \"hi\""`, value.EscapeToken(`say "hi"`))
	assert.Equal(t, `"back\\slash"`, value.EscapeToken(`back\slash`))
}
