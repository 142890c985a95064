package service

import (
	"testing"

	"checkers/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetGame(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id := svc.GenerateGameID()
	require.NoError(t, svc.CreateGame(id, 0, nil))

	g, err := svc.GetGame(id)
	require.NoError(t, err)
	assert.Equal(t, 8, g.Size())

	// Duplicate IDs are rejected
	err = svc.CreateGame(id, 0, nil)
	assert.Error(t, err)
}

func TestGetGameNotFound(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	_, err := svc.GetGame("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMakeMove(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id := svc.GenerateGameID()
	require.NoError(t, svc.CreateGame(id, 0, nil))

	// Black opens from the standard layout
	result, err := svc.MakeMove(id, 0, 5, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, "0,5-1,4", result.Move)

	g, _ := svc.GetGame(id)
	assert.Equal(t, []string{"0,5-1,4"}, g.Moves())
}

func TestMakeMoveErrors(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id := svc.GenerateGameID()
	require.NoError(t, svc.CreateGame(id, 0, nil))

	// Unknown game
	_, err := svc.MakeMove("nope", 0, 5, 1, 4)
	assert.Error(t, err)

	// Empty from square
	_, err = svc.MakeMove(id, 4, 4, 3, 3)
	assert.ErrorIs(t, err, game.ErrNoPiece)

	// Red cannot open the game
	_, err = svc.MakeMove(id, 1, 2, 0, 3)
	assert.ErrorIs(t, err, game.ErrWrongTurn)
}

func TestDeleteGame(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id := svc.GenerateGameID()
	require.NoError(t, svc.CreateGame(id, 0, nil))
	require.NoError(t, svc.DeleteGame(id))

	_, err := svc.GetGame(id)
	assert.Error(t, err)
	assert.Error(t, svc.DeleteGame(id))
}

func TestGetCurrentBoard(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id := svc.GenerateGameID()
	require.NoError(t, svc.CreateGame(id, 0, nil))

	ascii, err := svc.GetCurrentBoard(id)
	require.NoError(t, err)
	assert.Contains(t, ascii, "r")
	assert.Contains(t, ascii, "b")
}

func TestStorageHealthDisabled(t *testing.T) {
	svc := New(nil)
	defer svc.Close()
	assert.Equal(t, "disabled", svc.GetStorageHealth())
}
