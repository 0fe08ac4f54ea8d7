package dbutil

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestFinalizeRebind(t *testing.T) {
	query, args := Finalize("SELECT userId FROM users WHERE (username=?)", []interface{}{"alice"})
	require.Equal(t, "SELECT userId FROM users WHERE (username=$1)", query)
	require.Equal(t, []interface{}{"alice"}, args)

	query, _ = Finalize("UPDATE entries SET title=?,notes=? WHERE (entryId=? AND userId=?)", nil)
	require.Equal(t, "UPDATE entries SET title=$1,notes=$2 WHERE (entryId=$3 AND userId=$4)", query)
}

func TestIsConflict(t *testing.T) {
	require.True(t, IsConflict(&pq.Error{Code: "23505"}))
	require.False(t, IsConflict(&pq.Error{Code: "23503"}))
	require.False(t, IsConflict(errors.New("boom")))
	require.False(t, IsConflict(nil))
}
