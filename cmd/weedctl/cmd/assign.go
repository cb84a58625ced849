// Handle the "weedctl assign" command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreamware/seaweed"
	"github.com/dreamware/seaweed/master"
)

// Filled in by cobra argument parsing in init()
var assignCmdConfig struct {
	count       uint32
	collection  string
	dataCenter  string
	replication string
	ttl         string
}

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Allocate a new file id from the master",
	Long: `Ask the master server for a new file id and print it together with
the volume server location that will hold it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		fmt.Printf("fid\t%s\n", res.Fid)
		fmt.Printf("url\t%s\n", res.URL)
		fmt.Printf("publicUrl\t%s\n", res.PublicURL)
		return nil
	},
}

// assignOptions translates the command flags into assign options, parsing
// the replication and ttl wire strings.
func assignOptions() (*master.AssignOptions, error) {
	opts := &master.AssignOptions{
		Count:      assignCmdConfig.count,
		Collection: assignCmdConfig.collection,
		DataCenter: assignCmdConfig.dataCenter,
	}
	if assignCmdConfig.replication != "" {
		r, err := seaweed.ParseReplication(assignCmdConfig.replication)
		if err != nil {
			return nil, err
		}
		opts.Replication = &r
	}
	if assignCmdConfig.ttl != "" {
		t, err := seaweed.ParseTTL(assignCmdConfig.ttl)
		if err != nil {
			return nil, err
		}
		opts.TTL = &t
	}
	return opts, nil
}

func init() {
	rootCmd.AddCommand(assignCmd)

	assignCmd.Flags().Uint32Var(&assignCmdConfig.count, "count", 0, "number of file ids to allocate")
	assignCmd.Flags().StringVar(&assignCmdConfig.collection, "collection", "", "collection to place the file id in")
	assignCmd.Flags().StringVar(&assignCmdConfig.dataCenter, "data-center", "", "data center to place the volume in")
	assignCmd.Flags().StringVar(&assignCmdConfig.replication, "replication", "", `replica placement, e.g. "002"`)
	assignCmd.Flags().StringVar(&assignCmdConfig.ttl, "ttl", "", `time to live, e.g. "5M"`)
}
