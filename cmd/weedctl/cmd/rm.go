// Handle the "weedctl rm" command
package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dreamware/seaweed"
	"github.com/dreamware/seaweed/volume"
)

var rmCmd = &cobra.Command{
	Use:   "rm <fid>",
	Short: "Delete an object by file id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fid, err := seaweed.ParseFid(args[0])
		if err != nil {
			return err
		}

		v, err := resolveVolume(cmd, fid)
		if err != nil {
			return err
		}

		res, err := v.Delete(cmd.Context(), fid)
		if err != nil {
			return err
		}

		log.WithField("size", res.Size).Debug("deleted file")
		fmt.Printf("deleted %s\n", fid)
		return nil
	},
}

// resolveVolume looks a file id up through the master and returns a client
// for the first reported location.
func resolveVolume(cmd *cobra.Command, fid seaweed.Fid) (*volume.Volume, error) {
	m, err := newMaster()
	if err != nil {
		return nil, err
	}

	res, err := m.Lookup(cmd.Context(), fid, nil)
	if err != nil {
		return nil, err
	}
	if len(res.Locations) == 0 {
		return nil, errors.Errorf("no volume server is serving volume %d", fid.VolumeID)
	}
	return newVolume(res.Locations[0])
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
