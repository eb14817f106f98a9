package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAny_SortsMapKeys(t *testing.T) {
	v, err := FromAny(map[string]any{"b": 1, "a": "x", "c": []any{"y", nil}})
	require.NoError(t, err)

	fields := v.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "a", fields[0].Key)
	assert.Equal(t, "b", fields[1].Key)
	assert.Equal(t, "c", fields[2].Key)
	assert.Equal(t, KindString, fields[0].Value.Kind())
	assert.Equal(t, KindScalar, fields[1].Value.Kind())
	assert.Len(t, fields[2].Value.Items(), 2)
}

func TestFromAny_StringCollections(t *testing.T) {
	v, err := FromAny(map[string]string{"k": "v&"})
	require.NoError(t, err)
	got, ok := v.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v&", got.Str())

	list, err := FromAny([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, List(String("a"), String("b")), list)
}

func TestFromAny_CyclicInput(t *testing.T) {
	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	_, err := FromAny(cyclic)
	require.Error(t, err)
	var nestingErr *NestingError
	assert.ErrorAs(t, err, &nestingErr)
	assert.Equal(t, MaxDepth, nestingErr.Limit)
}

func TestFromAny_CyclicSlice(t *testing.T) {
	cyclic := make([]any, 1)
	cyclic[0] = cyclic

	_, err := FromAny(cyclic)
	var nestingErr *NestingError
	assert.ErrorAs(t, err, &nestingErr)
}

func TestValueOf_KeepsStructFieldOrder(t *testing.T) {
	type contact struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Age   int    `json:"age"`
	}

	v, err := ValueOf(contact{Name: "J_D", Email: "j@d", Age: 3})
	require.NoError(t, err)

	fields := v.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "name", fields[0].Key)
	assert.Equal(t, "email", fields[1].Key)
	assert.Equal(t, "age", fields[2].Key)
}

func TestScalar_StringBecomesStringLeaf(t *testing.T) {
	assert.Equal(t, KindString, Scalar("text").Kind())
}

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	assert.Equal(t, KindScalar, v.Kind())
	assert.Nil(t, v.ScalarValue())
	assert.Equal(t, Null(), v)
}

func TestGet_MissingKey(t *testing.T) {
	_, ok := Map().Get("missing")
	assert.False(t, ok)
	_, ok = String("x").Get("x")
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "map", KindMap.String())
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "scalar", KindScalar.String())
}
