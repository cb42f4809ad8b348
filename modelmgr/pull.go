package modelmgr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// ErrOllamaNotFound is returned by Pull when the ollama binary is not on PATH
var ErrOllamaNotFound = errors.New("ollama not found, make sure Ollama is installed and in PATH")

// Runner executes name with args, streaming output to stdout and stderr
type Runner func(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error

// ExecRunner runs the command with os/exec
func ExecRunner(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Puller downloads models through the ollama CLI
type Puller struct {
	Binary string
	Run    Runner
	Stdout io.Writer
	Stderr io.Writer
}

// NewPuller creates a puller invoking "ollama" with progress on the process streams
func NewPuller() *Puller {
	return &Puller{
		Binary: "ollama",
		Run:    ExecRunner,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Pull runs "ollama pull <model>" and waits for it to finish
func (p *Puller) Pull(ctx context.Context, model string) error {
	if model == "" {
		return errors.New("empty model name")
	}
	log.Info().Str("model", model).Str("binary", p.Binary).Msg("Pulling model")
	err := p.Run(ctx, p.Stdout, p.Stderr, p.Binary, "pull", model)
	if err == nil {
		return nil
	}
	log.Error().Err(err).Str("model", model).Msg("Pull failed")
	if errors.Is(err, exec.ErrNotFound) {
		return ErrOllamaNotFound
	}
	return fmt.Errorf("pull %s: %w", model, err)
}
