package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTicketStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to TicketStatus
		allowed  bool
	}{
		{TicketOpen, TicketOpen, true},
		{TicketOpen, TicketScheduled, true},
		{TicketOpen, TicketCompleted, true},
		{TicketScheduled, TicketScheduled, true},
		{TicketScheduled, TicketCompleted, true},
		{TicketScheduled, TicketOpen, false},
		{TicketCompleted, TicketCompleted, true},
		{TicketCompleted, TicketScheduled, false},
		{TicketCompleted, TicketOpen, false},
	}
	for _, c := range cases {
		require.Equalf(t, c.allowed, c.from.CanTransitionTo(c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestParseTicketStatus(t *testing.T) {
	s, err := ParseTicketStatus("SCHEDULED")
	require.NoError(t, err)
	require.Equal(t, TicketScheduled, s)

	_, err = ParseTicketStatus("Scheduled")
	require.Error(t, err)

	_, err = ParseTicketStatus("")
	require.Error(t, err)
}

func TestParseTicketPriority(t *testing.T) {
	p, err := ParseTicketPriority("HIGH")
	require.NoError(t, err)
	require.Equal(t, PriorityHigh, p)

	_, err = ParseTicketPriority("URGENT")
	require.Error(t, err)
}
