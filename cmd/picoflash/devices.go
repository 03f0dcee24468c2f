package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-bootsel/bootsel"
	"github.com/moffa90/go-bootsel/usbenum"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List known bootloader signatures and any connected match",
	RunE:  runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	fmt.Println("Known bootloader devices:")
	for _, s := range bootsel.ListKnownDevices() {
		fmt.Println("  " + s)
	}

	lister := usbenum.New()
	defer func() { _ = lister.Close() }()

	massStorage, err := lister.MassStorageDevices()
	if err != nil {
		return err
	}
	others, err := lister.OtherDevices()
	if err != nil {
		return err
	}

	if match := bootsel.MatchTarget(massStorage, others); match != nil {
		fmt.Printf("Connected: %s\n", match)
	} else {
		fmt.Println("No bootloader device connected.")
	}
	return nil
}
