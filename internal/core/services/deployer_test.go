package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

func TestDeployer_Deploy_NotConfigured(t *testing.T) {
	d := NewDeployer(domain.DeployConfig{}, &bytes.Buffer{})

	err := d.Deploy(context.Background())

	assert.ErrorIs(t, err, domain.ErrDeployNotConfigured)
}

func TestDeployer_Deploy_StreamsOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	d := NewDeployer(domain.DeployConfig{Command: "echo", Args: []string{"deployed"}}, buf)

	err := d.Deploy(context.Background())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "deployed")
}

func TestDeployer_Deploy_CommandFailure(t *testing.T) {
	d := NewDeployer(domain.DeployConfig{Command: "false"}, &bytes.Buffer{})

	err := d.Deploy(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deploy command")
}
