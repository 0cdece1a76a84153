package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"migrate", "seed-admin", "sweep-overdue"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestSeedAdmin_Flags(t *testing.T) {
	cmd := newSeedAdminCmd(&env{})

	username := cmd.Flags().Lookup("username")
	require.NotNil(t, username)
	assert.Equal(t, "admin", username.DefValue)

	// email e senha são obrigatórios
	err := cmd.ValidateRequiredFlags()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "password")
}

func TestSweepCmd_DefaultDays(t *testing.T) {
	cmd := newSweepCmd(&env{})

	days := cmd.Flags().Lookup("days")
	require.NotNil(t, days)
	assert.Equal(t, "30", days.DefValue)
}
