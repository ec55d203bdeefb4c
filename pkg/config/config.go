package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Config is a struct that holds configuration parameters for the package.
type Config struct {
	// CacheDir is where the embedded snapshot image is materialized
	// before it is opened.
	CacheDir string

	// DBPath points at an alternate snapshot file. When set, the
	// embedded snapshot is ignored.
	DBPath string

	// DumpDir is a directory to keep CSV dump files.
	DumpDir string

	// KeyValDir is a directory for the rebuild key-value store.
	KeyValDir string

	// JobsNum is a number of concurrent goroutines.
	JobsNum int

	// BatchSize is a number of records per transaction. The dump and
	// rebuild pipelines do not read it; buildio inserts rows in batches
	// of a fixed size.
	BatchSize int

	// MyHost is a host name for the vPIC MySQL mirror.
	MyHost string

	// MyUser is a user name for the vPIC MySQL mirror.
	MyUser string

	// MyPass is a password for the vPIC MySQL mirror.
	MyPass string

	// MyDB is a database name for the vPIC MySQL mirror.
	MyDB string
}

// Option type allows to change settings for Config.
type Option func(*Config)

// OptCacheDir sets the directory for the materialized snapshot.
func OptCacheDir(d string) Option {
	return func(cfg *Config) {
		cfg.CacheDir = expand(d)
	}
}

// OptDBPath sets an alternate snapshot file.
func OptDBPath(p string) Option {
	return func(cfg *Config) {
		cfg.DBPath = expand(p)
	}
}

// OptDumpDir sets a directory for CSV dump files.
func OptDumpDir(d string) Option {
	return func(cfg *Config) {
		cfg.DumpDir = expand(d)
	}
}

// OptJobsNum sets parallelism number for concurrent goroutines.
func OptJobsNum(j int) Option {
	return func(cfg *Config) {
		cfg.JobsNum = j
	}
}

// OptBatchSize sets BatchSize.
func OptBatchSize(n int) Option {
	return func(cfg *Config) {
		cfg.BatchSize = n
	}
}

// OptMyHost sets host for MySQL
func OptMyHost(h string) Option {
	return func(cfg *Config) {
		cfg.MyHost = h
	}
}

// OptMyUser sets user for MySQL
func OptMyUser(u string) Option {
	return func(cfg *Config) {
		cfg.MyUser = u
	}
}

// OptMyPass sets password for MySQL
func OptMyPass(p string) Option {
	return func(cfg *Config) {
		cfg.MyPass = p
	}
}

// OptMyDB sets database name for MySQL
func OptMyDB(d string) Option {
	return func(cfg *Config) {
		cfg.MyDB = d
	}
}

func New(opts ...Option) Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	cacheDir = filepath.Join(cacheDir, "vin")

	res := Config{
		CacheDir:  cacheDir,
		DumpDir:   filepath.Join(cacheDir, "vpic-dump"),
		KeyValDir: filepath.Join(cacheDir, "keyval"),
		JobsNum:   4,
		BatchSize: 50_000,
		MyHost:    "localhost",
		MyUser:    "root",
		MyDB:      "vpic",
	}

	for _, opt := range opts {
		opt(&res)
	}

	return res
}

func expand(path string) string {
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
		if home, err := homedir.Dir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
