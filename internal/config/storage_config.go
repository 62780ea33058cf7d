package config

// StorageConfig controls how buffers are read from and written to disk.
// The read size ceiling is fixed and not configurable.
type StorageConfig struct {
	ReadTimeoutSecs  int  `json:"read_timeout_secs,omitempty" yaml:"read_timeout_secs,omitempty" validate:"min=0"`
	WriteTimeoutSecs int  `json:"write_timeout_secs,omitempty" yaml:"write_timeout_secs,omitempty" validate:"min=0"`
	CreateDirs       bool `json:"create_dirs,omitempty" yaml:"create_dirs,omitempty"`
	BufferSizeKB     int  `json:"buffer_size_kb,omitempty" yaml:"buffer_size_kb,omitempty" validate:"min=0,max=1024"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		ReadTimeoutSecs:  DefaultStorageReadTimeoutSecs,
		WriteTimeoutSecs: DefaultStorageWriteTimeoutSecs,
		CreateDirs:       DefaultStorageCreateDirs,
		BufferSizeKB:     DefaultStorageBufferSizeKB,
	}
}
