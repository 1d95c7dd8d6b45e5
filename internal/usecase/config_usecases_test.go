package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanKp27/toDoList/internal/domain"
	"github.com/amanKp27/toDoList/internal/testutil"
)

func TestShowConfig_Execute(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	manager := &testutil.MockConfigManager{
		GlobalInfo: domain.ConfigInfo{Path: "/home/u/.config/todo/config.toml", Content: "[log]\n", Exists: true},
	}

	out, err := NewShowConfig(manager, cfg).Execute(context.Background(), ShowConfigInput{})

	require.NoError(t, err)
	assert.Same(t, cfg, out.Effective)
	assert.True(t, out.GlobalConfig.Exists)
	assert.False(t, out.OverrideConfig.Exists)
}

func TestInitConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{InitPath: "/home/u/.config/todo/config.toml"}

	out, err := NewInitConfig(manager).Execute(context.Background(), InitConfigInput{})

	require.NoError(t, err)
	assert.Equal(t, "/home/u/.config/todo/config.toml", out.Path)
	assert.True(t, manager.InitGlobalCall)
	require.NotNil(t, manager.InitCfg)
	assert.Equal(t, domain.BackendFile, manager.InitCfg.Storage.Backend)
}

func TestInitConfig_Execute_Exists(t *testing.T) {
	manager := &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}

	_, err := NewInitConfig(manager).Execute(context.Background(), InitConfigInput{Config: domain.NewDefaultConfig()})

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
