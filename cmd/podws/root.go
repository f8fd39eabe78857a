package main

import (
	"github.com/spf13/cobra"

	"github.com/SplashZ/CocoaPods/internal/workspace"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "podws",
		Short:         "Integrate generated Pods into the Xcode workspace",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("root", ".", "Directory containing the Podfile and podws.yaml")
	cmd.PersistentFlags().String("manifest", workspace.DefaultManifest, "Integration manifest file name")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored warnings")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Print additional progress information")

	cmd.AddCommand(
		newInitCmd(),
		newIntegrateCmd(),
		newCheckCmd(),
		newStatusCmd(),
		newDoctorCmd(),
	)

	return cmd
}
