package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/veneer/internal/logger"
)

var (
	skipConfirm bool
	cleanConfig bool
)

// Swapped in tests so they never touch the real log file.
var (
	logPath   = logger.DefaultLogPath
	clearLogs = logger.ClearLogs
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log and, optionally, the config file",
	Long: `Removes veneer's debug log. With --config it also deletes the saved
startup defaults so the next run starts from built-in values.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanConfig, "config", false, "Also remove the config file")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(cmd.OutOrStdout(), cmd.InOrStdin())
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(out io.Writer, input io.Reader) error {
	hasLog := fileExists(logPath)

	var cfgFile string
	if cleanConfig {
		path, err := configPath()
		if err != nil {
			return fmt.Errorf("error locating config: %w", err)
		}
		if fileExists(path) {
			cfgFile = path
		}
	}

	if !hasLog && cfgFile == "" {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	if hasLog {
		fmt.Fprintf(out, "  - debug log %s\n", logPath)
	}
	if cfgFile != "" {
		fmt.Fprintf(out, "  - config file %s\n", cfgFile)
	}

	if !skipConfirm {
		if !confirm(out, input, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	// The log may be open; close it so the file can go.
	logger.Close()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")

	logsCleared, err := clearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}

	if cfgFile != "" {
		if err := os.Remove(cfgFile); err != nil {
			return fmt.Errorf("error removing config: %w", err)
		}
		fmt.Fprintln(out, "  - config file removed")
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// confirm prompts the user for y/n confirmation
func confirm(out io.Writer, input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
