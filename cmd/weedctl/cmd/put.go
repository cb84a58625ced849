// Handle the "weedctl put" command
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put <file>",
	Short: "Upload a file: assign a file id and store the bytes",
	Long: `Assign a new file id from the master, then store the file's bytes on
the assigned volume server. Prints the file id on success; keep it, it is
the only handle to the stored object.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "reading input file")
		}

		opts, err := assignOptions()
		if err != nil {
			return err
		}

		m, err := newMaster()
		if err != nil {
			return err
		}

		res, err := m.Assign(cmd.Context(), opts)
		if err != nil {
			return err
		}

		v, err := newVolume(res.Location)
		if err != nil {
			return err
		}

		up, err := v.Store(cmd.Context(), res.Fid, data, nil)
		if err != nil {
			return err
		}

		log.WithFields(map[string]interface{}{
			"fid":  res.Fid.String(),
			"size": up.Size,
			"url":  res.URL,
		}).Debug("stored file")

		fmt.Println(res.Fid)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)

	// Placement flags are shared with assign
	putCmd.Flags().StringVar(&assignCmdConfig.collection, "collection", "", "collection to place the file id in")
	putCmd.Flags().StringVar(&assignCmdConfig.replication, "replication", "", `replica placement, e.g. "002"`)
	putCmd.Flags().StringVar(&assignCmdConfig.ttl, "ttl", "", `time to live, e.g. "5M"`)
}
