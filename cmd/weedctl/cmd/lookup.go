// Handle the "weedctl lookup" command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreamware/seaweed"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <fid>",
	Short: "Resolve a file id to its volume server locations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fid, err := seaweed.ParseFid(args[0])
		if err != nil {
			return err
		}

		m, err := newMaster()
		if err != nil {
			return err
		}

		res, err := m.Lookup(cmd.Context(), fid, nil)
		if err != nil {
			return err
		}

		for _, loc := range res.Locations {
			fmt.Printf("%s\t%s\n", loc.URL, loc.PublicURL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
