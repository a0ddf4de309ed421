package binding_test

import (
	"testing"

	"ctchen222/BoardGameKit/internal/binding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	board := &recordingBoard{}

	t.Run("keeps registration order", func(t *testing.T) {
		second := ticTacToeEntry(board)
		second.ID = "tictactoe-o"

		r, err := binding.NewRegistry(ticTacToeEntry(board), second)
		require.NoError(t, err)

		e, ok := r.Lookup(1)
		require.True(t, ok)
		assert.Equal(t, "tictactoe-o", e.ID)

		entries := r.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "tictactoe", entries[0].ID)
	})

	t.Run("missing selections", func(t *testing.T) {
		r, err := binding.NewRegistry(ticTacToeEntry(board))
		require.NoError(t, err)

		_, ok := r.Lookup(1)
		assert.False(t, ok)
		_, ok = r.Lookup(-1)
		assert.False(t, ok)
	})

	t.Run("rejects bad entries", func(t *testing.T) {
		_, err := binding.NewRegistry(ticTacToeEntry(board), ticTacToeEntry(board))
		assert.ErrorIs(t, err, binding.ErrDuplicateGame)

		_, err = binding.NewRegistry(binding.Entry{ID: "nil-factory"})
		assert.ErrorIs(t, err, binding.ErrInvalidGameEntry)

		entry := ticTacToeEntry(board)
		entry.ID = ""
		_, err = binding.NewRegistry(entry)
		assert.ErrorIs(t, err, binding.ErrInvalidGameEntry)
	})

	t.Run("frozen registry is read-only", func(t *testing.T) {
		r, err := binding.NewRegistry()
		require.NoError(t, err)
		r.Freeze()

		err = r.Register(ticTacToeEntry(board))
		assert.ErrorIs(t, err, binding.ErrRegistryFrozen)
		assert.Empty(t, r.Entries())
	})
}
