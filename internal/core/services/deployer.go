package services

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driving"
	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

// Ensure Deployer implements the interface.
var _ driving.Deployer = (*Deployer)(nil)

// Deployer publishes the preview site by shelling out to the configured
// external command (e.g. firebase hosting).
type Deployer struct {
	cfg domain.DeployConfig
	out io.Writer
}

// NewDeployer creates a deployer. Command output is streamed to out.
func NewDeployer(cfg domain.DeployConfig, out io.Writer) *Deployer {
	return &Deployer{cfg: cfg, out: out}
}

// Deploy runs the configured command, streaming its combined output.
func (d *Deployer) Deploy(ctx context.Context) error {
	if d.cfg.Command == "" {
		return domain.ErrDeployNotConfigured
	}

	logger.Info("deploy: running %s %v", d.cfg.Command, d.cfg.Args)

	cmd := exec.CommandContext(ctx, d.cfg.Command, d.cfg.Args...)
	cmd.Dir = d.cfg.Dir
	cmd.Stdout = d.out
	cmd.Stderr = d.out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("deploy command %q: %w", d.cfg.Command, err)
	}
	return nil
}
