package main

import (
	"fmt"
	"os"
	"runtime"

	"image-viewer/internal/app"
	"image-viewer/internal/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "image-viewer [file]",
	Short: "Minimal desktop image viewer and format converter",
	Long: `image-viewer opens PNG, JPEG, WebP, GIF and BMP images, shows them
with zoom and fit-to-window controls, and saves the current image in any
of those formats.

Set LOG_LEVEL (debug, info, warn, error) or DEBUG=1 to control logging.`,
	Version:       app.AppVersion,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var initialPath string
		if len(args) == 1 {
			initialPath = args[0]
		}

		log := logger.NewConsoleLogger(logger.LevelFromEnv(os.Getenv))
		app.NewDesktopApplication(log).Run(initialPath)
		return nil
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"image-viewer %s (%s/%s, %s)\n",
		app.AppVersion, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "image-viewer:", err)
		os.Exit(1)
	}
}
