package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completionHelp is the long help of the completion command. {app} is
// replaced with the binary name.
const completionHelp = `Generate shell completion scripts for {app}.

Preset ids, layouts and directories complete from the current config.

Bash:
  $ source <({app} completion bash)
  # persist (Linux):
  $ {app} completion bash > /etc/bash_completion.d/{app}

Zsh:
  # enable completion once if needed:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  $ {app} completion zsh > "${fpath[1]}/_{app}"

Fish:
  $ {app} completion fish > ~/.config/fish/completions/{app}.fish

PowerShell:
  PS> {app} completion powershell | Out-String | Invoke-Expression
`

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  strings.ReplaceAll(completionHelp, "{app}", appName),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
