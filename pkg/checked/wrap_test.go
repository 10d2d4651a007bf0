package checked_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contracts/pkg/checked"
	"github.com/dmitrymomot/contracts/pkg/contract"
	"github.com/dmitrymomot/contracts/pkg/logger"
)

func add(a, b int) int { return a + b }

func TestWrap_Declaration(t *testing.T) {
	t.Parallel()
	t.Run("rejects non functions", func(t *testing.T) {
		_, err := checked.Wrap("x", 42, nil)
		assert.ErrorIs(t, err, checked.ErrNotAFunction)

		_, err = checked.Wrap("x", nil, nil)
		assert.ErrorIs(t, err, checked.ErrNotAFunction)

		var fn func()
		_, err = checked.Wrap("x", fn, nil)
		assert.ErrorIs(t, err, checked.ErrNotAFunction)
	})

	t.Run("requires every parameter to be declared", func(t *testing.T) {
		_, err := checked.Wrap("add", add, []checked.ParamSpec{checked.Param("a", nil)})
		assert.ErrorIs(t, err, checked.ErrSignatureMismatch)
	})

	t.Run("rejects duplicate and empty names", func(t *testing.T) {
		_, err := checked.Wrap("add", add, []checked.ParamSpec{checked.Param("a", nil), checked.Param("a", nil)})
		assert.ErrorIs(t, err, checked.ErrInvalidParam)

		_, err = checked.Wrap("add", add, []checked.ParamSpec{checked.Param("a", nil), checked.Param("", nil)})
		assert.ErrorIs(t, err, checked.ErrInvalidParam)
	})

	t.Run("rejects required after optional", func(t *testing.T) {
		_, err := checked.Wrap("add", add, []checked.ParamSpec{
			checked.Param("a", nil).Default(1),
			checked.Param("b", nil),
		})
		assert.ErrorIs(t, err, checked.ErrInvalidParam)
	})

	t.Run("rejects positional after keyword-only", func(t *testing.T) {
		_, err := checked.Wrap("add", add, []checked.ParamSpec{
			checked.Param("a", nil).KeywordOnly(),
			checked.Param("b", nil),
		})
		assert.ErrorIs(t, err, checked.ErrInvalidParam)
	})

	t.Run("checks defaults once at declaration", func(t *testing.T) {
		_, err := checked.Wrap("add", add, []checked.ParamSpec{
			checked.Param("a", nil),
			checked.Param("b", contract.Positive).Default(-1),
		})
		assert.ErrorIs(t, err, checked.ErrInvalidParam)
		assert.ErrorIs(t, err, contract.ErrContractViolation)

		_, err = checked.Wrap("add", add, []checked.ParamSpec{
			checked.Param("a", nil),
			checked.Param("b", nil).Default("one"),
		})
		assert.ErrorIs(t, err, checked.ErrInvalidParam)
	})

	t.Run("exposes the binding", func(t *testing.T) {
		f := checked.MustWrap("add", add, []checked.ParamSpec{
			checked.Param("a", contract.Integer),
			checked.Param("b", nil),
		})
		b := f.Binding()
		assert.Equal(t, "add", f.Name())
		assert.Equal(t, 2, b.Len())
		assert.Equal(t, []string{"a", "b"}, b.Names())

		v, ok := b.Validator("a")
		assert.True(t, ok)
		assert.Same(t, contract.Integer, v)

		v, ok = b.Validator("b")
		assert.True(t, ok)
		assert.Nil(t, v)

		_, ok = b.Validator("c")
		assert.False(t, ok)
	})

	t.Run("falls back to the runtime name", func(t *testing.T) {
		f := checked.MustWrap("", add, []checked.ParamSpec{checked.Param("a", nil), checked.Param("b", nil)})
		assert.Equal(t, "checked_test.add", f.Name())
	})

	t.Run("MustWrap panics on declaration errors", func(t *testing.T) {
		assert.Panics(t, func() { checked.MustWrap("x", 1, nil) })
	})
}

func TestWithLogger(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithLevel(-4))

	f := checked.MustWrap("add", add, []checked.ParamSpec{
		checked.Param("a", contract.Positive),
		checked.Param("b", nil),
	}, checked.WithLogger(log), checked.WithLogger(nil))

	_, err := f.Call(1, 2)
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = f.Call(-1, 2)
	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, "call rejected")
	assert.Contains(t, out, "method=add")
	assert.Contains(t, out, "param=a")
}

func TestBindingError(t *testing.T) {
	t.Parallel()
	err := &checked.BindingError{Method: "f", Param: "x", Reason: "missing required argument 'x'"}
	assert.Equal(t, "[f]: cannot bind arguments: missing required argument 'x'", err.Error())
	assert.True(t, errors.Is(err, checked.ErrBinding))
	assert.True(t, checked.IsBindingError(err))
	assert.False(t, checked.IsBindingError(errors.New("x")))
}
