package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration and record batch validation
var (
	ErrInvalidConfig      = goerr.New("invalid configuration")
	ErrInvalidRecordBatch = goerr.New("invalid record batch")
)

// Context keys for error values
const (
	ConfigPathKey  = "config_path"
	RecordPathKey  = "record_path"
	RecordIndexKey = "record_index"
)
