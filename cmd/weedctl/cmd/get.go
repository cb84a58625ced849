// Handle the "weedctl get" command
package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dreamware/seaweed"
)

var getCmdConfig struct {
	output string
}

var getCmd = &cobra.Command{
	Use:   "get <fid>",
	Short: "Download an object by file id",
	Long: `Resolve the file id through the master, fetch the bytes from the
first reported volume server, and write them to stdout or --output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fid, err := seaweed.ParseFid(args[0])
		if err != nil {
			return err
		}

		v, err := resolveVolume(cmd, fid)
		if err != nil {
			return err
		}

		data, err := v.FetchBytes(cmd.Context(), fid, nil)
		if err != nil {
			return err
		}

		if getCmdConfig.output != "" {
			return errors.Wrap(os.WriteFile(getCmdConfig.output, data, 0644), "writing output file")
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&getCmdConfig.output, "output", "o", "", "write the object to this file instead of stdout")
}
