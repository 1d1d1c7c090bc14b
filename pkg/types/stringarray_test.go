package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_Value(t *testing.T) {
	v, err := StringArray{"Кардиология", "УЗИ"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["Кардиология","УЗИ"]`, string(v.([]byte)))

	// nil сериализуется как пустой массив, не как null
	v, err = StringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(v.([]byte)))
}

func TestStringArray_Scan(t *testing.T) {
	var a StringArray

	require.NoError(t, a.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringArray{"a", "b"}, a)

	require.NoError(t, a.Scan(`["c"]`))
	assert.Equal(t, StringArray{"c"}, a)

	assert.Error(t, a.Scan(42))
}

func TestStringArray_ScanNullIsEmptyNonNil(t *testing.T) {
	var a StringArray

	require.NoError(t, a.Scan(nil))
	require.NotNil(t, a)
	assert.Len(t, a, 0)

	require.NoError(t, a.Scan([]byte("null")))
	require.NotNil(t, a)
	assert.Len(t, a, 0)

	require.NoError(t, a.Scan([]byte{}))
	require.NotNil(t, a)
	assert.Len(t, a, 0)
}
