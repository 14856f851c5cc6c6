package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traverselib/traverse/internal/tvalue"
)

func TestAllOnEmptyContainers(t *testing.T) {
	for _, v := range []Value{vecOf(), tvalue.NewMap(), tvalue.NewSet(), tvalue.NewSeq()} {
		res, err := Select(ALL, v)
		require.NoError(t, err)
		assert.Empty(t, res)
	}
}

func TestAllOnMapYieldsPairsAndRebuildsFromPairs(t *testing.T) {
	structure := mapOf("a", 1, "b", 2)
	res, err := Select(ALL, structure)
	require.NoError(t, err)
	require.Len(t, res, 2)
	pair0 := res[0].(*tvalue.Vec)
	assert.Equal(t, "a", pair0.At(0).(tvalue.Scalar).Raw())

	out, err := Transform(ALL, func(vals []Value, x Value) (Value, error) {
		pair := x.(*tvalue.Vec)
		return vecOf(toValue(pair.At(0).(tvalue.Scalar).Raw()).(Value), asInt(pair.At(1))+1), nil
	}, structure)
	require.NoError(t, err)
	got, ok := out.(*tvalue.Map).Get(scalar("a"))
	require.True(t, ok)
	assert.Equal(t, 2, asInt(got))
}

func TestFirstLastOnVec(t *testing.T) {
	structure := vecOf(1, 2, 3)
	f, err := SelectFirst(FIRST, structure)
	require.NoError(t, err)
	assert.Equal(t, 1, asInt(f))

	l, err := SelectFirst(LAST, structure)
	require.NoError(t, err)
	assert.Equal(t, 3, asInt(l))

	out, err := Setval(FIRST, scalar(99), structure)
	require.NoError(t, err)
	assert.Equal(t, 99, asInt(out.(*tvalue.Vec).Items()[0]))
}

func TestFirstLastOnEmptyIsShapeMismatch(t *testing.T) {
	_, err := Select(FIRST, vecOf())
	require.Error(t, err)
	var shapeErr *ShapeMismatchError
	assert.ErrorAs(t, err, &shapeErr)

	_, err = Select(LAST, vecOf())
	assert.Error(t, err)
}

func TestFirstLastOnMapIsShapeMismatch(t *testing.T) {
	_, err := Select(FIRST, mapOf("a", 1))
	assert.Error(t, err)
}

func TestBeginningAndEnd(t *testing.T) {
	structure := vecOf(1, 2, 3)
	out, err := Setval(BEGINNING, vecOf(0), structure)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, toInts(out))

	out, err = Setval(END, vecOf(9), structure)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 9}, toInts(out))
}

func toInts(v Value) []int {
	items := v.(*tvalue.Vec).Items()
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = asInt(it)
	}
	return out
}

func TestSrangeEmptyWindowInsertsAtPosition(t *testing.T) {
	structure := vecOf(1, 2, 3)
	out, err := Setval(Srange(1, 1), vecOf(8, 9), structure)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8, 9, 2, 3}, toInts(out))
}

func TestWalkerDescendsAndStopsAtMatch(t *testing.T) {
	isEven := func(x Value) bool {
		s, ok := x.(tvalue.Scalar)
		if !ok {
			return false
		}
		n, ok := s.Raw().(int)
		return ok && n%2 == 0
	}
	structure := vecOf(1, vecOf(2, 3), mapOf("k", 4))
	res, err := Select(Walker(isEven), structure)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, 2, asInt(res[0]))
	assert.Equal(t, 4, asInt(res[1]))
}

func TestWalkerOverLeaf(t *testing.T) {
	always := func(Value) bool { return true }
	res, err := Select(Walker(always), scalar(5))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 5, asInt(res[0]))
}

func TestCodewalkerIgnoresMaps(t *testing.T) {
	hasFour := func(x Value) bool {
		s, ok := x.(tvalue.Scalar)
		return ok && s.Raw() == 4
	}
	structure := vecOf(1, mapOf("k", 4))
	res, err := Select(Codewalker(hasFour), structure)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestSelectedAndNotSelected(t *testing.T) {
	structure := mapOf("a", 1, "b", 2)
	res, err := Select(Selected("a"), structure)
	require.NoError(t, err)
	require.Len(t, res, 1)

	res, err = Select(NotSelected("z"), structure)
	require.NoError(t, err)
	require.Len(t, res, 1)

	res, err = Select(NotSelected("a"), structure)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestCondPathNoMatch(t *testing.T) {
	never := func(Value) bool { return false }
	structure := scalar(1)
	res, err := Select(CondPath(never, View(func(x Value) (Value, error) { return x, nil })), structure)
	require.NoError(t, err)
	assert.Empty(t, res)

	out, err := Transform(CondPath(never, View(func(x Value) (Value, error) { return scalar(0), nil })),
		func(vals []Value, x Value) (Value, error) { return x, nil }, structure)
	require.NoError(t, err)
	assert.Equal(t, structure.String(), out.String())
}

func TestMultiPathSelectConcatenatesAndTransformThreads(t *testing.T) {
	structure := mapOf("a", 1, "b", 2)
	res, err := Select(MultiPath([]any{"a"}, []any{"b"}), structure)
	require.NoError(t, err)
	require.Len(t, res, 2)

	out, err := Transform(MultiPath([]any{"a"}, []any{"b"}), func(vals []Value, x Value) (Value, error) {
		return scalar(asInt(x) * 10), nil
	}, structure)
	require.NoError(t, err)
	a, _ := out.(*tvalue.Map).Get(scalar("a"))
	b, _ := out.(*tvalue.Map).Get(scalar("b"))
	assert.Equal(t, 10, asInt(a))
	assert.Equal(t, 20, asInt(b))
}

func TestFiltererArityMismatch(t *testing.T) {
	odd := func(x Value) bool { return asInt(x)%2 != 0 }
	_, err := Transform(Filterer(odd), func(vals []Value, x Value) (Value, error) {
		return vecOf(1), nil
	}, vecOf(1, 2, 3))
	require.Error(t, err)
	var arityErr *ArityMismatchError
	assert.ErrorAs(t, err, &arityErr)
}

func TestViewNoWriteBack(t *testing.T) {
	doubled := View(func(x Value) (Value, error) { return scalar(asInt(x) * 2), nil })
	out, err := Transform(doubled, func(vals []Value, x Value) (Value, error) { return scalar(asInt(x) + 1), nil }, scalar(5))
	require.NoError(t, err)
	assert.Equal(t, 11, asInt(out))
}

func TestTransformedWindow(t *testing.T) {
	structure := vecOf(1, 2, 3)
	nav := Transformed([]any{ALL}, func(x Value) (Value, error) { return scalar(asInt(x) + 1), nil })
	res, err := Select(nav, structure)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []int{2, 3, 4}, toInts(res[0]))
}

func TestPutvalAndVAL(t *testing.T) {
	structure := vecOf(1, 2)
	out, err := Transform([]any{ALL, Putval(42)}, func(vals []Value, x Value) (Value, error) {
		require.Len(t, vals, 1)
		assert.Equal(t, 42, asInt(vals[0]))
		return x, nil
	}, structure)
	require.NoError(t, err)
	assert.Equal(t, structure.String(), out.String())

	out, err = Transform([]any{ALL, VAL}, func(vals []Value, x Value) (Value, error) {
		require.Len(t, vals, 1)
		assert.Equal(t, x.String(), vals[0].String())
		return x, nil
	}, structure)
	require.NoError(t, err)
	assert.Equal(t, structure.String(), out.String())
}

func TestPutvalLateBound(t *testing.T) {
	compiled, err := Compile(ALL, Putval(L))
	require.NoError(t, err)
	require.Equal(t, 1, compiled.Slots())

	bound := BindParams(compiled, []Value{scalar(7)}, 0)
	out, err := Transform(bound, func(vals []Value, x Value) (Value, error) {
		return scalar(asInt(vals[0]) + asInt(x)), nil
	}, vecOf(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9, 10}, toInts(out))
}

func TestCollectAndCollectOneCardinality(t *testing.T) {
	structure := mapOf("items", vecOf(1, 2, 3))
	out, err := Transform([]any{Collect([]any{"items", ALL}), "items"}, func(vals []Value, x Value) (Value, error) {
		require.Len(t, vals, 1)
		assert.Equal(t, 3, vals[0].(*tvalue.Vec).Len())
		return x, nil
	}, structure)
	require.NoError(t, err)
	assert.Equal(t, structure.String(), out.String())

	_, err = Select([]any{CollectOne([]any{"items", ALL}), "items"}, structure)
	var cardErr *CardinalityError
	assert.ErrorAs(t, err, &cardErr)
}

func TestPredicateLiteralAndSetLiteral(t *testing.T) {
	isPositive := func(x Value) bool { return asInt(x) > 0 }
	res, err := Select([]any{ALL, isPositive}, vecOf(-1, 2, -3, 4))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, func() []int {
		out := make([]int, len(res))
		for i, v := range res {
			out[i] = asInt(v)
		}
		return out
	}())

	allowed := tvalue.NewSet(scalar("a"), scalar("b"))
	res, err = Select([]any{ALL, allowed}, vecOf("a", "z", "b"))
	require.NoError(t, err)
	require.Len(t, res, 2)
}

func TestKeypathAbsentKeyOnTransformFillsIt(t *testing.T) {
	structure := mapOf("a", 1)
	out, err := Transform("missing", func(vals []Value, x Value) (Value, error) {
		assert.Equal(t, nil, x.(tvalue.Scalar).Raw())
		return scalar("filled"), nil
	}, structure)
	require.NoError(t, err)
	got, ok := out.(*tvalue.Map).Get(scalar("missing"))
	require.True(t, ok)
	assert.Equal(t, "filled", got.(tvalue.Scalar).Raw())
}
