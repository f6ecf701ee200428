package commands

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InteractiveCmd creates the interactive command
func InteractiveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (connect once, run multiple commands)",
		Long: `Start an interactive session where you can run multiple commands against
one database connection without restarting the tool. The session keeps
running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\n🚀 Starting interactive session...")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			// Collect sibling commands, excluding interactive itself
			rootCmd := cmd.Parent()
			siblings := make(map[string]*cobra.Command)
			for _, subCmd := range rootCmd.Commands() {
				if subCmd.Name() != "interactive" && subCmd.Name() != "completion" && subCmd.Name() != "help" {
					siblings[subCmd.Name()] = subCmd
				}
			}

			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Print("> ")

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				parts, err := parseCommandLine(line)
				if err != nil {
					fmt.Printf("❌ Error parsing command: %v\n\n", err)
					continue
				}
				if len(parts) == 0 {
					continue
				}
				cmdName := parts[0]
				cmdArgs := parts[1:]

				if cmdName == "exit" || cmdName == "quit" {
					fmt.Println("👋 Goodbye!")
					return nil
				}

				if cmdName == "help" {
					printInteractiveHelp(siblings)
					continue
				}

				targetCmd, exists := siblings[cmdName]
				if !exists {
					fmt.Printf("❌ Unknown command: %s (type 'help' for available commands)\n\n", cmdName)
					continue
				}

				// Reset flags to their defaults between invocations
				targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
					flag.Changed = false
					flag.Value.Set(flag.DefValue)
				})

				// Run the command's RunE directly instead of going through
				// Execute(), which would re-run PersistentPreRunE and
				// reinitialize the application
				if err := targetCmd.ParseFlags(cmdArgs); err != nil {
					fmt.Printf("❌ Error parsing flags: %v\n\n", err)
					continue
				}

				cmdArgs = targetCmd.Flags().Args()

				if err := targetCmd.Args(targetCmd, cmdArgs); err != nil {
					fmt.Printf("❌ Error: %v\n\n", err)
					continue
				}

				if targetCmd.RunE != nil {
					if err := targetCmd.RunE(targetCmd, cmdArgs); err != nil {
						fmt.Printf("❌ Error: %v\n\n", err)
					}
				} else if targetCmd.Run != nil {
					targetCmd.Run(targetCmd, cmdArgs)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			return nil
		},
	}

	return cmd
}

func printInteractiveHelp(commands map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("  %-30s %s\n", cmd.Use, cmd.Short)
	}

	fmt.Println("\n  help                           Show this help message")
	fmt.Println("  exit, quit                     Exit the interactive session")
}

// parseCommandLine splits a command line into arguments, respecting single
// and double quoted strings
func parseCommandLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	var inQuote rune // 0 outside quotes, '"' or '\'' inside

	for _, r := range line {
		switch {
		case inQuote != 0:
			if r == inQuote {
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			inQuote = r
		case unicode.IsSpace(r):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if inQuote != 0 {
		return nil, fmt.Errorf("unclosed quote: %c", inQuote)
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args, nil
}
