package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driven"
)

// Ensure terminalTokenProvider implements the interface.
var _ driven.TokenProvider = (*terminalTokenProvider)(nil)

// terminalTokenProvider prompts for a GitHub token on the terminal when
// the config does not carry one. Off a terminal it returns "" so public
// repositories still work unauthenticated.
type terminalTokenProvider struct {
	in *os.File
}

func (p *terminalTokenProvider) GetToken(_ context.Context) (string, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprint(os.Stderr, "GitHub token (empty for unauthenticated): ")
	token, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(token), nil
}
