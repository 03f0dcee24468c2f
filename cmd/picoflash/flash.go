package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-bootsel/bootsel"
	"github.com/moffa90/go-bootsel/usbenum"
)

var (
	devicePath string
	allBlocks  bool
)

var flashCmd = &cobra.Command{
	Use:   "flash <image.uf2>",
	Short: "Flash a UF2 image onto a connected BOOTSEL device",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlash,
}

func init() {
	flashCmd.Flags().StringVar(&devicePath, "device", "", "raw block node of the BOOTSEL volume (e.g. /dev/sdb)")
	flashCmd.Flags().BoolVar(&allBlocks, "all-blocks", false, "validate every block's framing before writing")
	rootCmd.AddCommand(flashCmd)
}

func runFlash(cmd *cobra.Command, args []string) error {
	if devicePath == "" {
		return errors.New("--device is required")
	}

	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	lister := usbenum.New()
	defer func() { _ = lister.Close() }()

	f := bootsel.New(lister, &nodeHost{path: devicePath}, fileOpener{path: devicePath},
		bootsel.WithLogger(glogLogger{}),
		bootsel.WithValidateAllBlocks(allBlocks),
		bootsel.WithProgressCallback(printProgress),
	)

	result := f.FlashFirmware(cmd.Context(), image, filepath.Base(args[0]))
	fmt.Println()
	if !result.Ok() {
		return fmt.Errorf("flash failed: %s", result)
	}

	fmt.Printf("flashed %s (%d bytes)\n", args[0], len(image))
	return nil
}

func printProgress(p bootsel.Progress) {
	fmt.Printf("\r[%-11s] %5.1f%% block %d/%d", p.Phase, p.Percentage, p.CurrentBlock, p.TotalBlocks)
}
