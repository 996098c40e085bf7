package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for your shell, so that flowscii
subcommands and flags tab-complete.

Load it for the current session:

  bash:       source <(flowscii completion bash)
  zsh:        source <(flowscii completion zsh)
  fish:       flowscii completion fish | source
  powershell: flowscii completion powershell | Out-String | Invoke-Expression

To load on every shell start, write the script where your shell picks
completions up, for example:

  flowscii completion bash > /etc/bash_completion.d/flowscii
  flowscii completion zsh  > "${fpath[1]}/_flowscii"
  flowscii completion fish > ~/.config/fish/completions/flowscii.fish

Zsh needs compinit enabled ("autoload -U compinit; compinit" in ~/.zshrc).
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
