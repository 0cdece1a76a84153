package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPendente, StatusPago, true},
		{StatusPendente, StatusAtrasado, true},
		{StatusPendente, StatusCancelado, true},
		{StatusAtrasado, StatusPago, true},
		{StatusAtrasado, StatusCancelado, true},
		{StatusAtrasado, StatusPendente, false},
		{StatusPago, StatusCancelado, false},
		{StatusCancelado, StatusPago, false},
		{StatusPendente, StatusPendente, false},
	}

	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_status_transition"), "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestFinal(t *testing.T) {
	assert.True(t, StatusPago.Final())
	assert.True(t, StatusCancelado.Final())
	assert.False(t, StatusPendente.Final())
	assert.False(t, StatusAtrasado.Final())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("atrasado")
	require.NoError(t, err)
	assert.Equal(t, StatusAtrasado, s)

	_, err = ParseStatus("paid")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestApply(t *testing.T) {
	now := time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC)

	o := &models.Order{Status: "pendente"}
	require.NoError(t, Apply(o, StatusPago, now))
	assert.Equal(t, "pago", o.Status)
	require.NotNil(t, o.PaidAt)
	assert.Equal(t, now, *o.PaidAt)

	err := Apply(o, StatusCancelado, now)
	assert.Error(t, err)
	assert.Equal(t, "pago", o.Status)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, 12, 31, 3, 0, 0, 0, time.UTC)

	old := models.Order{Status: "pendente", CreatedAt: now.AddDate(0, 0, -31)}
	fresh := models.Order{Status: "pendente", CreatedAt: now.AddDate(0, 0, -5)}
	paid := models.Order{Status: "pago", CreatedAt: now.AddDate(0, 0, -60)}

	assert.True(t, IsOverdue(old, now, 30))
	assert.False(t, IsOverdue(fresh, now, 30))
	assert.False(t, IsOverdue(paid, now, 30))
}

func TestRelativeLabel(t *testing.T) {
	loc := timezone.Default()
	now := time.Date(2024, 12, 26, 9, 0, 0, 0, loc)

	assert.Equal(t, "Hoje", RelativeLabel(time.Date(2024, 12, 26, 0, 30, 0, 0, loc), now, loc))
	assert.Equal(t, "Ontem", RelativeLabel(time.Date(2024, 12, 25, 23, 59, 0, 0, loc), now, loc))
	assert.Equal(t, "3 dias", RelativeLabel(time.Date(2024, 12, 23, 12, 0, 0, 0, loc), now, loc))
}

func TestBasketDescription(t *testing.T) {
	assert.Equal(t, "Cesta Básica Completa - 3x no Cartão", BasketDescription("3x no Cartão"))
}
