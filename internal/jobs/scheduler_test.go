package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_RejectsBadSpec(t *testing.T) {
	s := NewScheduler(time.UTC, zerolog.Nop())

	_, err := s.Register("sweep", "todo dia", func(context.Context) error { return nil })
	assert.Error(t, err)
}

func TestRegister_RunsJob(t *testing.T) {
	s := NewScheduler(time.UTC, zerolog.Nop())

	calls := 0
	id, err := s.Register("sweep", DefaultOverdueSpec, func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		calls++
		return errors.New("falha registrada, não propagada")
	})
	require.NoError(t, err)

	entry := s.cron.Entry(id)
	require.NotNil(t, entry.Job)
	entry.Job.Run()
	assert.Equal(t, 1, calls)

	s.Start()
	require.NoError(t, s.Stop(context.Background()))
}
