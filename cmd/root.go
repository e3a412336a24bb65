// Package cmd implements the command-line interface for tonearm.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tonearm-cli/tonearm/color"
	"github.com/tonearm-cli/tonearm/console"
	"github.com/tonearm-cli/tonearm/constant"
	"github.com/tonearm-cli/tonearm/filesystem"
	"github.com/tonearm-cli/tonearm/icon"
	"github.com/tonearm-cli/tonearm/key"
	"github.com/tonearm-cli/tonearm/log"
	"github.com/tonearm-cli/tonearm/style"
	"github.com/tonearm-cli/tonearm/util"
	"github.com/tonearm-cli/tonearm/version"
	"github.com/tonearm-cli/tonearm/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist played tracks to the localized playback history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnPlay, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.Flags().StringP("engine", "e", "", "Audio engine binary to use for this run")
	lo.Must0(viper.BindPFlag(key.PlayerEngine, rootCmd.Flags().Lookup("engine")))

	rootCmd.Flags().BoolP("continue", "c", false, "Replay the most recent history entry before the given tracks")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the tonearm application.
var rootCmd = &cobra.Command{
	Use:   constant.Tonearm + " [tracks...]",
	Short: "A minimalist command-line audio player remote-controlling mpg123",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist command-line audio player remote-controlling mpg123"),
	Example: "  tonearm ~/music/track.mp3\n  tonearm --continue\n  tonearm *.mp3",
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		resume := lo.Must(cmd.Flags().GetBool("continue"))

		if len(args) == 0 && !resume {
			handleErr(cmd.Help())
			return
		}

		CheckEngine()

		options := console.Options{
			Tracks: lo.Map(args, func(path string, _ int) string {
				return filesystem.Expand(path)
			}),
			Continue: resume,
		}
		handleErr(console.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
