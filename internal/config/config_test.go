package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.False(t, cfg.AutoApprove)
	assert.Equal(t, DefaultSlotTemplate, cfg.SlotTemplate)
	assert.NotContains(t, cfg.SlotTemplate, "12:00")
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, getEnvBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "not-a-bool")
	assert.False(t, getEnvBool("TEST_BOOL", false))

	assert.True(t, getEnvBool("TEST_BOOL_MISSING", true))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("TEST_LIST", "09:00, 10:00 ,11:00")
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, getEnvList("TEST_LIST", nil))

	assert.Equal(t, []string{"x"}, getEnvList("TEST_LIST_MISSING", []string{"x"}))

	t.Setenv("TEST_LIST", " , ,")
	assert.Equal(t, []string{"x"}, getEnvList("TEST_LIST", []string{"x"}))
}

func TestAutoApproveFlag(t *testing.T) {
	t.Setenv("AUTO_APPROVE", "true")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AutoApprove)
}
