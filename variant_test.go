package variant

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func intType() reflect.Type { return reflect.TypeFor[int]() }

func TestNullableScenarioIntString(t *testing.T) {
	sig := Types2[int, string]()

	v := Empty(sig)
	require.True(t, v.IsEmpty())
	require.True(t, Is[None](v))

	require.NoError(t, Assign(v, 42))
	assert.True(t, Is[int](v))
	assert.False(t, Is[string](v))
	got, err := Get[int](v)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	require.NoError(t, Assign(v, "hello"))
	assert.False(t, Is[int](v))
	assert.True(t, Is[string](v))
	s, err := Get[string](v)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	require.NoError(t, Assign(v, None{}))
	require.True(t, v.IsEmpty())
	_, err = Get[int](v)
	require.Error(t, err)
	assert.True(t, IsBadAccess(err))
}

func TestMakeResolvesFirstIndex(t *testing.T) {
	sig := Types3[int, string, float64]()
	v, err := Make("data", sig)
	require.NoError(t, err)
	require.False(t, v.Nullable())
	require.False(t, v.IsEmpty())
	at, ok := v.ActiveType()
	require.True(t, ok)
	assert.Equal(t, "string", at.String())
}

func TestMakeRejectsUnknownAlternative(t *testing.T) {
	sig := Types2[int, string]()
	_, err := Make(1.5, sig)
	require.ErrorIs(t, err, ErrUnknownAlternative)
}

func TestMakeNullableWithNoneIsEmpty(t *testing.T) {
	sig := Types2[int, string]()
	v, err := MakeNullable(None{}, sig)
	require.NoError(t, err)
	assert.True(t, v.Nullable())
	assert.True(t, v.IsEmpty())
}

func TestAssignUnknownAlternativeKeepsState(t *testing.T) {
	sig := Types2[int, string]()
	v, err := MakeNullable(7, sig)
	require.NoError(t, err)
	require.ErrorIs(t, Assign(v, 1.5), ErrUnknownAlternative)
	got, err := Get[int](v)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestAssignEmptyIdempotent(t *testing.T) {
	sig := Types2[int, string]()
	v, err := MakeNullable("x", sig)
	require.NoError(t, err)
	require.NoError(t, v.AssignEmpty())
	require.True(t, v.IsEmpty())
	require.NoError(t, v.AssignEmpty())
	require.True(t, v.IsEmpty())
}

func TestAssignEmptyOnStrictFails(t *testing.T) {
	sig := Types2[int, string]()
	v, err := Make(1, sig)
	require.NoError(t, err)
	require.ErrorIs(t, v.AssignEmpty(), ErrNotNullable)
	require.ErrorIs(t, Assign(v, None{}), ErrNotNullable)
	assert.True(t, Is[int](v))
}

func TestDestroyIdempotent(t *testing.T) {
	sig := Types2[int, string]()
	v, err := Make(1, sig)
	require.NoError(t, err)
	v.Destroy()
	v.Destroy()
	_, err = Get[int](v)
	require.ErrorIs(t, err, ErrBadAccess)
}

func TestCopyRoundTrip(t *testing.T) {
	sig := Types2[int, string]()
	v, err := MakeNullable(42, sig)
	require.NoError(t, err)
	w := v.Clone()
	assert.True(t, w.Equal(v))

	require.NoError(t, Assign(w, 99))
	got, err := Get[int](v)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestMoveRoundTripNullable(t *testing.T) {
	sig := Types2[int, string]()
	v, err := MakeNullable("payload", sig)
	require.NoError(t, err)
	w := v.Take()
	s, err := Get[string](w)
	require.NoError(t, err)
	assert.Equal(t, "payload", s)
	assert.True(t, v.IsEmpty())
}

func TestMoveRoundTripStrict(t *testing.T) {
	sig := Types2[int, string]()
	v, err := Make("payload", sig)
	require.NoError(t, err)
	w := v.Take()
	s, err := Get[string](w)
	require.NoError(t, err)
	assert.Equal(t, "payload", s)
	// copy-like move: the source keeps its alternative live
	assert.True(t, Is[string](v))
	v.Destroy()
}

func TestCopyFromAllCases(t *testing.T) {
	sig := Types2[int, string]()

	// both empty
	a, b := Empty(sig), Empty(sig)
	require.NoError(t, a.CopyFrom(b))
	assert.True(t, a.IsEmpty())

	// self empty, other live
	b2, err := MakeNullable(5, sig)
	require.NoError(t, err)
	require.NoError(t, a.CopyFrom(b2))
	got, err := Get[int](a)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	// self live, other empty
	require.NoError(t, a.CopyFrom(Empty(sig)))
	assert.True(t, a.IsEmpty())

	// both live, same index
	require.NoError(t, Assign(a, 1))
	require.NoError(t, a.CopyFrom(b2))
	got, err = Get[int](a)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	// both live, different index
	c, err := MakeNullable("other", sig)
	require.NoError(t, err)
	require.NoError(t, a.CopyFrom(c))
	s, err := Get[string](a)
	require.NoError(t, err)
	assert.Equal(t, "other", s)
}

func TestMoveFromEmptiesNullableSource(t *testing.T) {
	sig := Types2[int, string]()
	a := Empty(sig)
	b, err := MakeNullable(11, sig)
	require.NoError(t, err)
	require.NoError(t, a.MoveFrom(b))
	assert.True(t, b.IsEmpty())
	got, err := Get[int](a)
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}

func TestCopyFromSignatureMismatch(t *testing.T) {
	a := Empty(Types2[int, string]())
	b := Empty(Types2[int, float64]())
	require.ErrorIs(t, a.CopyFrom(b), ErrSignatureMismatch)
	require.ErrorIs(t, a.MoveFrom(b), ErrSignatureMismatch)

	// same list, different nullability
	sig := Types2[int, string]()
	c, err := Make(1, sig)
	require.NoError(t, err)
	d, err := MakeNullable(2, sig)
	require.NoError(t, err)
	require.ErrorIs(t, c.CopyFrom(d), ErrSignatureMismatch)
}

func TestDuplicateAlternativeRejected(t *testing.T) {
	_, err := Types(intType(), intType())
	require.ErrorIs(t, err, ErrDuplicateAlternative)
	require.Panics(t, func() { Types2[int, int]() })
}

func TestYAMLScalarIntoVariant(t *testing.T) {
	// a config value that is either a port number or a socket path
	sig := Types2[int, string]()
	docs := map[string]struct {
		input  string
		isInt  bool
		number int
		text   string
	}{
		"number": {input: "listen: 8080", isInt: true, number: 8080},
		"path":   {input: `listen: /run/app.sock`, text: "/run/app.sock"},
	}
	for name, tc := range docs {
		t.Run(name, func(t *testing.T) {
			var doc struct {
				Listen any `yaml:"listen"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(tc.input), &doc))
			v := Empty(sig)
			switch x := doc.Listen.(type) {
			case int:
				require.NoError(t, Assign(v, x))
			case string:
				require.NoError(t, Assign(v, x))
			default:
				t.Fatalf("unexpected yaml scalar %T", doc.Listen)
			}
			if tc.isInt {
				require.True(t, Is[int](v))
				assert.Equal(t, tc.number, GetUnsafe[int](v))
			} else {
				require.True(t, Is[string](v))
				assert.Equal(t, tc.text, GetUnsafe[string](v))
			}
		})
	}
}

func FuzzAssignGet(f *testing.F) {
	f.Add(int64(42), "hello", true)
	f.Add(int64(-1), "", false)
	f.Fuzz(func(t *testing.T, n int64, s string, intLast bool) {
		sig := Types2[int64, string]()
		v := Empty(sig)
		require.NoError(t, Assign(v, n))
		require.NoError(t, Assign(v, s))
		if intLast {
			require.NoError(t, Assign(v, n))
			require.True(t, Is[int64](v))
			got, err := Get[int64](v)
			require.NoError(t, err)
			require.Equal(t, n, got)
			_, err = Get[string](v)
			require.ErrorIs(t, err, ErrBadAccess)
		} else {
			require.True(t, Is[string](v))
			got, err := Get[string](v)
			require.NoError(t, err)
			require.Equal(t, s, got)
			_, err = Get[int64](v)
			require.ErrorIs(t, err, ErrBadAccess)
		}
	})
}
