// Package cmd implements the command-line interface for tonearm.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tonearm-cli/tonearm/color"
	"github.com/tonearm-cli/tonearm/icon"
	"github.com/tonearm-cli/tonearm/player"
	"github.com/tonearm-cli/tonearm/style"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd reports whether the configured audio engine can be used.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the configured audio engine is available",
	Run: func(cmd *cobra.Command, args []string) {
		engine := player.FromConfig()
		if err := engine.Available(); err != nil {
			printMissingEngineError(err)
			os.Exit(1)
		}

		fmt.Printf(
			"%s %s is ready\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Bold(engine.Binary),
		)
	},
}

// CheckEngine verifies that the configured audio engine binary is present
// in the system PATH. It terminates the process with an explanation when
// playback would be impossible.
func CheckEngine() {
	if err := player.FromConfig().Available(); err != nil {
		printMissingEngineError(err)
		os.Exit(1)
	}
}

func printMissingEngineError(err error) {
	binary := "mpg123"
	if unavailable, ok := err.(*player.EngineUnavailableError); ok {
		binary = unavailable.Binary
	}

	var installCmd string
	if binary == "mpg123" {
		switch runtime.GOOS {
		case "darwin":
			installCmd = "brew install mpg123"
		case "linux":
			installCmd = "sudo apt install mpg123" // Generic, maybe check distro
		case "windows":
			installCmd = "scoop install mpg123"
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Audio Engine", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The audio engine '%s' was not found in your PATH.", binary))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
