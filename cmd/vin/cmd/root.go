package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davidpeckham/vin"
	"github.com/davidpeckham/vin/pkg/config"
	"github.com/gnames/gnsys"
	"github.com/lmittmann/tint"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configText = `---

# Path to an alternate vPIC snapshot file. Leave empty to use the
# snapshot bundled with the library.
DBPath:

# Directory for CSV extract files used by dump and rebuild.
DumpDir:

# MySQL host of the vPIC mirror (dump only)
MyHost: localhost

# MySQL user of the vPIC mirror
MyUser: root

# MySQL password of the vPIC mirror
MyPass:

# MySQL database of the vPIC mirror
MyDB: vpic

# Number of jobs for parallel tasks
JobsNum: 4
`

var (
	cfgFile string
	opts    []config.Option
)

// cfgFileData mirrors the configuration file so viper can unmarshal it.
type cfgFileData struct {
	DBPath  string
	DumpDir string
	MyHost  string
	MyUser  string
	MyPass  string
	MyDB    string
	JobsNum int
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vin",
	Short: "Validates and decodes Vehicle Identification Numbers",
	Long: `vin validates 17-character VINs, decodes them against a bundled
snapshot of the NHTSA vPIC database, and maintains that snapshot from
vPIC extracts.`,
	Run: func(cmd *cobra.Command, args []string) {
		version, err := cmd.Flags().GetBool("version")
		if err != nil {
			slog.Error("Cannot get version flag", "error", err)
			os.Exit(1)
		}
		if version {
			fmt.Printf("\nversion: %s\nbuild: %s\n\n", vin.Version, vin.Build)
			os.Exit(0)
		}
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, nil)))
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.config/vin.yaml)")
	rootCmd.Flags().BoolP("version", "V", false, "Returns version and build date")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var home string
	var err error
	configFile := "vin"

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err = homedir.Dir()
		if err != nil {
			slog.Error("Cannot find home directory", "error", err)
			os.Exit(1)
		}
		home = filepath.Join(home, ".config")
		viper.AddConfigPath(home)
		viper.SetConfigName(configFile)
	}

	viper.AutomaticEnv()

	if cfgFile == "" {
		touchConfigFile(filepath.Join(home, fmt.Sprintf("%s.yaml", configFile)))
	}

	if err := viper.ReadInConfig(); err != nil {
		slog.Error("Cannot read config file", "error", err)
		os.Exit(1)
	}
	getOpts()
}

// getOpts imports the config file data into configuration options.
func getOpts() {
	var data cfgFileData
	if err := viper.Unmarshal(&data); err != nil {
		slog.Error("Cannot unmarshal config", "error", err)
		os.Exit(1)
	}
	if data.DBPath != "" {
		opts = append(opts, config.OptDBPath(data.DBPath))
	}
	if data.DumpDir != "" {
		opts = append(opts, config.OptDumpDir(data.DumpDir))
	}
	if data.MyHost != "" {
		opts = append(opts, config.OptMyHost(data.MyHost))
	}
	if data.MyUser != "" {
		opts = append(opts, config.OptMyUser(data.MyUser))
	}
	if data.MyPass != "" {
		opts = append(opts, config.OptMyPass(data.MyPass))
	}
	if data.MyDB != "" {
		opts = append(opts, config.OptMyDB(data.MyDB))
	}
	if data.JobsNum > 0 {
		opts = append(opts, config.OptJobsNum(data.JobsNum))
	}
}

// touchConfigFile creates a default config file when none exists.
func touchConfigFile(configPath string) {
	fileExists, _ := gnsys.FileExists(configPath)
	if fileExists {
		return
	}
	slog.Info("Creating config file", "path", configPath)
	if err := gnsys.MakeDir(filepath.Dir(configPath)); err != nil {
		slog.Error("Cannot create config directory", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(configPath, []byte(configText), 0o644); err != nil {
		slog.Error("Cannot write config file", "error", err)
		os.Exit(1)
	}
}
