package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAgentByID(t *testing.T) {
	agent := GetAgentByID("1")
	require.NotNil(t, agent)
	assert.Equal(t, "Sarah Mitchell", agent.Name)

	assert.Nil(t, GetAgentByID("999"))
}
