package cmd

import (
	"log"
	"os"

	"github.com/josephlewis42/labshell/core"
	"github.com/josephlewis42/labshell/core/config"
	"github.com/josephlewis42/labshell/core/terminal"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func loadConfig() (*config.Configuration, error) {
	return config.FromEnvironment(afero.NewOsFs())
}

// newRootCmd creates the shell command. It accepts no arguments or flags; any
// given are a usage error reported before the terminal is touched.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labshell",
		Short: "A small interactive shell",
		Long: `An interactive shell with the builtins -v, exit, cd and history.
Other commands are run as child processes.

The prompt is read from $SHELL_PROMPT and an optional YAML configuration
from the file or directory named by $SHELL_CONFIG.`,
		Args:               cobra.NoArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			logger := log.New(cmd.ErrOrStderr(), "labshell: ", 0)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			session := terminal.NewSession(terminal.Options{
				Terminal:      int(os.Stdin.Fd()),
				PromptEnv:     cfg.PromptEnv,
				DefaultPrompt: cfg.DefaultPrompt,
				Logger:        logger,
			})
			if err := session.Init(); err != nil {
				return err
			}
			defer func() {
				if err := session.Teardown(); err != nil {
					logger.Printf("couldn't restore terminal: %v", err)
				}
			}()

			editor, err := core.NewLineEditor(session, cfg)
			if err != nil {
				return err
			}
			defer editor.Close()

			sh := core.NewShell(session, cfg, editor, &core.ProcessExecutor{
				Stdin:  os.Stdin,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			}, core.ShellOptions{
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
				Logger: logger,
			})

			return sh.Run()
		},
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
