package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordJSON(t *testing.T) {
	data, err := buildtree(2, 1, 3).Snapshot().JSON()
	require.NoError(t, err)

	expected := `{"id": 2, "left": {"id": 1}, "right": {"id": 3}}`
	require.JSONEq(t, expected, string(data))
	require.Contains(t, string(data), "\n    \"id\": 2")

	data, err = NewBstNode(9).Snapshot().JSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"id": 9}`, string(data))
}

func TestRecordYAML(t *testing.T) {
	data, err := buildtree(2, 1, 3).Snapshot().YAML()
	require.NoError(t, err)
	require.Equal(t, "id: 2\nleft:\n  id: 1\nright:\n  id: 3\n", string(data))
}

func TestRecordEmpty(t *testing.T) {
	var r *Record[int]
	require.Equal(t, 0, r.Count())
	require.Equal(t, -1, r.Height())
	require.Empty(t, r.Keys())
	require.NoError(t, r.Validate())
}

func TestRecordValidate(t *testing.T) {
	require.NoError(t, buildtree(4, 2, 6, 1, 3, 5, 7).Snapshot().Validate())

	testcases := []struct {
		name   string
		record *Record[int]
		errmsg string
	}{
		{
			"deep left",
			rec(4, rec(2, leaf(1), leaf(5)), nil),
			"left subtree key 5 is not less than 4",
		},
		{
			"deep right",
			rec(4, nil, rec(6, leaf(3), nil)),
			"right subtree key 3 is not greater than 4",
		},
		{
			"equal child",
			rec(4, leaf(4), nil),
			"left subtree key 4 is not less than 4",
		},
		{
			"inner violation",
			rec(10, rec(4, leaf(6), nil), nil),
			"depth 1, left subtree key 6 is not less than 4",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.record.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errmsg)
		})
	}
}
