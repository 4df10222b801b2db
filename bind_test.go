package microflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindBasic(t *testing.T) {
	type app struct {
		Verbose bool
		Output  string
		Number  int
	}
	a := app{}

	flags, err := Bind(&a)
	require.NoError(t, err)
	require.Len(t, flags, 3)
	assert.Equal(t, "--verbose", flags[0].Long)
	assert.Equal(t, "--output", flags[1].Long)
	assert.Equal(t, "--number", flags[2].Long)

	err = Parse(flags, []string{"test", "--verbose", "--output", "hello", "--number", "42"})
	require.NoError(t, err)
	assert.Equal(t, app{Verbose: true, Output: "hello", Number: 42}, a)
}

func TestBindAllTypes(t *testing.T) {
	type app struct {
		Help   bool
		Char   byte
		Output string
		Number int
		Ratio  float64
	}
	a := app{}

	flags, err := Bind(&a)
	require.NoError(t, err)
	require.Len(t, flags, 5)
	assert.Equal(t, TypeBool, flags[0].Type())
	assert.Equal(t, TypeChar, flags[1].Type())
	assert.Equal(t, TypeString, flags[2].Type())
	assert.Equal(t, TypeInt, flags[3].Type())
	assert.Equal(t, TypeDouble, flags[4].Type())

	err = Parse(flags, []string{
		"test",
		"--help",
		"--char", "Z",
		"--output", "f",
		"--number", "-5",
		"--ratio", "0.5",
	})
	require.NoError(t, err)
	assert.Equal(t, app{Help: true, Char: 'Z', Output: "f", Number: -5, Ratio: 0.5}, a)
}

func TestBindKebabCaseNames(t *testing.T) {
	type app struct {
		OutputFile string
		MaxRetries int
	}
	a := app{}

	flags, err := Bind(&a)
	require.NoError(t, err)
	require.Len(t, flags, 2)
	assert.Equal(t, "--output-file", flags[0].Long)
	assert.Equal(t, "--max-retries", flags[1].Long)
}

func TestBindTags(t *testing.T) {
	type app struct {
		Output string `flag:"short=o,help=set output file"`
		Number int    `flag:"name=num,help='print this, a number'"`
		Secret string `flag:"-"`
		hidden int
	}
	a := app{}

	flags, err := Bind(&a)
	require.NoError(t, err)
	require.Len(t, flags, 2)

	assert.Equal(t, "-o", flags[0].Short)
	assert.Equal(t, "--output", flags[0].Long)
	assert.Equal(t, "set output file", flags[0].Description)

	assert.Equal(t, "", flags[1].Short)
	assert.Equal(t, "--num", flags[1].Long)
	assert.Equal(t, "print this, a number", flags[1].Description)

	require.NoError(t, Parse(flags, []string{"test", "-o", "x", "--num", "7"}))
	assert.Equal(t, "x", a.Output)
	assert.Equal(t, 7, a.Number)
	assert.Equal(t, 0, a.hidden)
}

func TestBindEmbedded(t *testing.T) {
	type Common struct {
		Verbose bool `flag:"short=v,help=verbose output"`
	}
	type app struct {
		Common
		Output string
	}
	a := app{}

	flags, err := Bind(&a)
	require.NoError(t, err)
	require.Len(t, flags, 2)
	assert.Equal(t, "--verbose", flags[0].Long)
	assert.Equal(t, "--output", flags[1].Long)

	require.NoError(t, Parse(flags, []string{"test", "-v", "--output", "x"}))
	assert.True(t, a.Verbose)
	assert.Equal(t, "x", a.Output)
}

func TestBindDefaultsUntouched(t *testing.T) {
	type app struct {
		Output string
		Number int
	}
	a := app{Output: "out", Number: 7}

	flags, err := Bind(&a)
	require.NoError(t, err)

	require.NoError(t, Parse(flags, []string{"test", "--number", "9"}))
	assert.Equal(t, "out", a.Output)
	assert.Equal(t, 9, a.Number)
}

func TestBindErrors(t *testing.T) {
	type unsupported struct {
		Nope []string
	}
	_, err := Bind(&unsupported{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no flag type for []string")

	type badShort struct {
		Output string `flag:"short=out"`
	}
	_, err = Bind(&badShort{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short name must be 1 letter")

	type badTag struct {
		Output string `flag:"wat=hello"`
	}
	_, err = Bind(&badTag{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tags: wat")

	_, err = Bind(nil)
	require.Error(t, err)

	_, err = Bind(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a struct pointer")

	s := "hello"
	_, err = Bind(&s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a struct pointer")
}

func TestMustBind(t *testing.T) {
	type app struct {
		Output string
	}
	assert.NotPanics(t, func() { MustBind(&app{}) })
	assert.Panics(t, func() { MustBind(42) })
}
