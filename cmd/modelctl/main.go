package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/lixenwraith/vi-arena/modelmgr"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type settings struct {
	url         string
	backendFile string
	logLevel    string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("modelctl failed")
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	s := &settings{}
	defaultURL := os.Getenv("OLLAMA_URL")
	if defaultURL == "" {
		defaultURL = modelmgr.DefaultURL
	}

	root := &cobra.Command{
		Use:           "modelctl",
		Short:         "Manage and test the Ollama models used by the AI backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), s.logLevel)
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().StringVar(&s.url, "url", defaultURL, "Ollama base URL (defaults OLLAMA_URL)")
	root.PersistentFlags().StringVar(&s.backendFile, "backend-file", "ai-backend/ollamaServer.js", "Backend source holding the MODEL constant")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "info", "Log level: debug|info|warn|error")

	client := func() *modelmgr.Client { return modelmgr.NewClient(s.url) }

	checkCmd := &cobra.Command{Use: "check", Short: "Check that Ollama is running", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		if !client().Check(cmd.Context()) {
			return fmt.Errorf("%w at %s, start it with: ollama serve", modelmgr.ErrDaemonDown, s.url)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Ollama is running")
		return nil
	}}

	listCmd := &cobra.Command{Use: "list", Short: "List installed models", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		models, err := client().ListModels(cmd.Context())
		if err != nil {
			return err
		}
		if len(models) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No models installed")
			return nil
		}
		for _, m := range models {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", m.Name)
		}
		return nil
	}}

	pullCmd := &cobra.Command{Use: "pull <model>", Short: "Download a model with ollama pull", Example: "  modelctl pull mistral", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := modelmgr.Lookup(args[0]); !ok {
			log.Warn().Str("model", args[0]).Msg("Model is not in the recommended list")
		}
		p := modelmgr.NewPuller()
		p.Stdout, p.Stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
		if err := p.Pull(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully installed %s\n", args[0])
		return nil
	}}

	var prompt string
	testCmd := &cobra.Command{Use: "test <model>", Short: "Send a test prompt to a model", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		resp, err := client().Generate(cmd.Context(), args[0], prompt)
		if err != nil {
			return err
		}
		log.Debug().Str("model", args[0]).Dur("elapsed", time.Since(start)).Msg("Model responded")
		fmt.Fprintln(cmd.OutOrStdout(), "Model responded successfully")
		fmt.Fprintf(cmd.OutOrStdout(), "Response: %s...\n", modelmgr.Truncate(resp, 100))
		return nil
	}}
	testCmd.Flags().StringVar(&prompt, "prompt", modelmgr.DefaultPrompt, "Prompt to send")

	setCmd := &cobra.Command{Use: "set-backend <model>", Short: "Point the backend MODEL constant at a model", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		if err := modelmgr.UpdateBackendModel(s.backendFile, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s to use: %s\n", s.backendFile, args[0])
		return nil
	}}

	recommendedCmd := &cobra.Command{Use: "recommended", Short: "Show recommended models", Args: cobra.NoArgs, Run: func(cmd *cobra.Command, args []string) {
		modelmgr.PrintRecommended(cmd.OutOrStdout())
	}}

	menuCmd := &cobra.Command{Use: "menu", Short: "Interactive menu", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		m := &modelmgr.Menu{
			Client:      client(),
			Puller:      modelmgr.NewPuller(),
			BackendFile: s.backendFile,
			In:          cmd.InOrStdin(),
			Out:         cmd.OutOrStdout(),
		}
		err := m.Run(cmd.Context())
		if errors.Is(err, modelmgr.ErrDaemonDown) {
			return nil
		}
		return err
	}}

	root.AddCommand(checkCmd, listCmd, pullCmd, testCmd, setCmd, recommendedCmd, menuCmd)
	// Running without a subcommand opens the menu
	root.RunE = menuCmd.RunE
	return root
}
