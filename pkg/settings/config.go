package settings

import "github.com/huynhanx03/go-bptree/pkg/datastructs/btree"

type Config struct {
	Tree   Tree   `mapstructure:"tree" yaml:"tree"`
	Logger Logger `mapstructure:"logger" yaml:"logger"`
	Server Server `mapstructure:"server" yaml:"server"`
}

// Tree is the configuration for the index
type Tree struct {
	MaxKeys         int `mapstructure:"max_keys" yaml:"max_keys" validate:"gte=2"`
	RecordsPerBlock int `mapstructure:"records_per_block" yaml:"records_per_block" validate:"gte=1"`
}

// ToBTree converts the block into the engine's sizing.
func (t Tree) ToBTree() btree.Config {
	return btree.Config{
		MaxKeys:         t.MaxKeys,
		RecordsPerBlock: t.RecordsPerBlock,
	}
}

// Server is the configuration for the server
type Server struct {
	Mode            string `mapstructure:"mode" yaml:"mode" validate:"oneof=debug release test"`
	Host            string `mapstructure:"host" yaml:"host"`
	Port            int    `mapstructure:"port" yaml:"port" validate:"gte=0,lte=65535"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gte=0"` // Seconds
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`   // Days
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Tree: Tree{
			MaxKeys:         btree.DefaultMaxKeys,
			RecordsPerBlock: btree.DefaultRecordsPerBlock,
		},
		Logger: Logger{
			LogLevel:   "info",
			MaxBackups: 3,
			MaxAge:     28,
			MaxSize:    100,
		},
		Server: Server{
			Mode:            "release",
			Host:            "127.0.0.1",
			Port:            8080,
			ShutdownTimeout: 5,
		},
	}
}
