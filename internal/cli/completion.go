package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/placeview/pkg/render/sink"
)

// scriptExt is the extension offered when completing a plot_script argument.
const scriptExt = "scr"

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for placeview.

To load completions:

Bash:
  $ source <(placeview completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ placeview completion bash > /etc/bash_completion.d/placeview
  # macOS:
  $ placeview completion bash > $(brew --prefix)/etc/bash_completion.d/placeview

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ placeview completion zsh > "${fpath[1]}/_placeview"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ placeview completion fish | source

  # To load completions for each session, execute once:
  $ placeview completion fish > ~/.config/fish/completions/placeview.fish

PowerShell:
  PS> placeview completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> placeview completion powershell > placeview.ps1
  # and source this file from your PowerShell profile.
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

// completeScript completes the single plot_script argument with .scr files.
// On a command with subcommands, file completion starts once the word looks
// like a path so subcommand names stay completable.
func completeScript(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if cmd.HasAvailableSubCommands() && !strings.ContainsAny(toComplete, "./~") {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{scriptExt}, cobra.ShellCompDirectiveFilterFileExt
}

// completeFormats completes a comma-separated --format value, one format at
// a time and without repeating formats already listed.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	done, partial := "", toComplete
	if i := strings.LastIndexByte(toComplete, ','); i >= 0 {
		done, partial = toComplete[:i+1], toComplete[i+1:]
	}
	seen := make(map[string]bool)
	if done != "" {
		for _, f := range parseFormats(done) {
			seen[f] = true
		}
	}

	var out []string
	for _, f := range sink.Formats {
		if !seen[f] && strings.HasPrefix(f, strings.ToLower(partial)) {
			out = append(out, done+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
