package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStatsWithinExpectedRanges(t *testing.T) {
	for i := 0; i < 20; i++ {
		s := GenerateStats()
		assert.GreaterOrEqual(t, s.TotalConversations, 1248)
		assert.Less(t, s.TotalConversations, 1253)
		assert.GreaterOrEqual(t, s.ActiveNow, 8)
		assert.LessOrEqual(t, s.ActiveNow, 22)
	}
}

func TestGenerateConversationsFixedCast(t *testing.T) {
	convs := GenerateConversations()
	require.Len(t, convs, 5)
	for _, c := range convs {
		assert.Contains(t, []string{"instagram", "facebook", "whatsapp"}, c.Platform)
		assert.Contains(t, []string{"active", "qualified"}, c.Status)
		assert.NotEmpty(t, c.Avatar)
	}
}

func TestGenerateLeads(t *testing.T) {
	leads := GenerateLeads()
	require.Len(t, leads, 3)
	for _, l := range leads {
		assert.Equal(t, "qualified", l.Status)
		assert.Positive(t, l.Score)
	}
}

func TestValidChannel(t *testing.T) {
	assert.True(t, ValidChannel("instagram"))
	assert.True(t, ValidChannel("whatsapp"))
	assert.True(t, ValidChannel("facebook"))
	assert.False(t, ValidChannel("telegram"))
	assert.False(t, ValidChannel(""))
}

func TestGenerateChannelConversations(t *testing.T) {
	convs := GenerateChannelConversations("whatsapp", 15)
	require.Len(t, convs, 15)

	for i, c := range convs {
		assert.Equal(t, "whatsapp", c.Platform)
		assert.NotEmpty(t, c.Contact.Phone)
		assert.NotEmpty(t, c.Messages)
		assert.Contains(t, []string{"hot", "warm", "cold"}, c.Contact.Temperature)
		assert.Equal(t, "user", c.Messages[0].Sender)

		// Sorted by most recent interaction first.
		if i > 0 {
			assert.False(t, c.Contact.LastInteractionAt.After(convs[i-1].Contact.LastInteractionAt))
		}
	}
}

func TestColorForIsDeterministic(t *testing.T) {
	a := colorFor("María", "González")
	b := colorFor("María", "González")
	assert.Equal(t, a, b)
}

func TestTemperatureFor(t *testing.T) {
	assert.Equal(t, "hot", temperatureFor(70))
	assert.Equal(t, "warm", temperatureFor(40))
	assert.Equal(t, "cold", temperatureFor(39))
}
