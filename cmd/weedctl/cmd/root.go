package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dreamware/seaweed"
	"github.com/dreamware/seaweed/master"
	"github.com/dreamware/seaweed/volume"
)

var (
	cfgFile string
	verbose bool

	log = logrus.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "weedctl",
	Short: "Client for a SeaweedFS-style blob storage cluster",
	Long: `weedctl talks to the master and volume servers of a SeaweedFS-style
cluster: assign file ids, upload and download objects, and delete them.

The master address comes from --master, the WEEDCTL_MASTER environment
variable, or the "master" key of the config file, in that order.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.weedctl.yaml)")
	rootCmd.PersistentFlags().String("master", "localhost:9333", "master server address as host:port")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every request at debug level")

	viper.BindPFlag("master", rootCmd.PersistentFlags().Lookup("master"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".weedctl")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("weedctl")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}

// newMaster builds the directory client from the configured address.
func newMaster() (*master.Master, error) {
	return master.NewFromString(viper.GetString("master"), master.WithLogger(log))
}

// newVolume builds an object store client for a master-reported location.
func newVolume(loc seaweed.Location) (*volume.Volume, error) {
	return volume.FromLocation(loc, volume.WithLogger(log))
}
