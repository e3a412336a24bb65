// Package cmd implements the command-line interface for tonearm.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tonearm-cli/tonearm/color"
	"github.com/tonearm-cli/tonearm/history"
	"github.com/tonearm-cli/tonearm/icon"
	"github.com/tonearm-cli/tonearm/style"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

// historyCmd serves as the parent command for inspecting the playback history.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and manage the localized playback history",
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().StringP("query", "q", "", "Fuzzy filter entries by track name or path")
	historyListCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")

	historyListCmd.SetOut(os.Stdout)
}

// historyListCmd displays recorded playback entries ranked by play count.
var historyListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Display recorded playback entries ranked by play count",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			query  = lo.Must(cmd.Flags().GetString("query"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		tracks, err := history.Search(query)
		handleErr(err)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(tracks))
			return
		}

		if len(tracks) == 0 {
			cmd.Println(style.Faint("history is empty"))
			return
		}

		for i, track := range tracks {
			cmd.Printf(
				"%s %s %s\n",
				style.Faint(fmt.Sprintf("%2d", i+1)),
				icon.Get(icon.Note),
				track.String(),
			)
			cmd.Println(style.Faint("     " + track.Path))
		}
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
	historyRemoveCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}

// historyRemoveCmd deletes the best matching entry from the playback history.
var historyRemoveCmd = &cobra.Command{
	Use:     "remove [track]",
	Short:   "Remove a track from the playback history",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		force := lo.Must(cmd.Flags().GetBool("force"))

		suggested := history.Suggest(args[0])
		if suggested.IsAbsent() {
			handleErr(fmt.Errorf("no history entry matches %s", style.Fg(color.Red)(args[0])))
		}
		track := suggested.MustGet()

		if !force {
			confirmed := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Remove %q from the history?", track.Name),
			}
			handleErr(survey.AskOne(prompt, &confirmed))

			if !confirmed {
				return
			}
		}

		handleErr(history.Remove(track))
		fmt.Printf(
			"%s removed %s from the history\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(track.Name),
		)
	},
}
