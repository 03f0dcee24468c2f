// picoflash flashes UF2 firmware images onto RP2040/RP2350-class boards in
// BOOTSEL mode by writing raw blocks to the bootloader's mass-storage volume.
//
// Usage:
//
//	picoflash flash firmware.uf2 --device /dev/sdb
//	picoflash devices
//
// The --device flag names the raw block node the host assigned to the
// BOOTSEL volume. glog flags (-v, -logtostderr, ...) are accepted as well.
package main

import (
	goflag "flag"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "picoflash",
	Short:        "Flash UF2 firmware onto USB mass-storage bootloaders",
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	defer glog.Flush()

	if err := rootCmd.Execute(); err != nil {
		glog.Exit(err.Error())
	}
}
