package config

// Configfile represents the structure of the logshare.yaml configuration file.
type Configfile struct {
	Version string    `yaml:"version"`
	Store   StoreDTO  `yaml:"store"`
	Export  ExportDTO `yaml:"export"`
	UI      UIDTO     `yaml:"ui"`
	Log     LogDTO    `yaml:"log"`
}

// StoreDTO locates the record database and the blob store.
type StoreDTO struct {
	Database string `yaml:"database"`
	Blobs    string `yaml:"blobs"`
}

// ExportDTO holds export defaults.
type ExportDTO struct {
	Dir      string `yaml:"dir"`
	Format   string `yaml:"format"`
	Theme    string `yaml:"theme"`
	PageSize string `yaml:"pageSize"`
}

// UIDTO selects the progress view.
type UIDTO struct {
	Mode string `yaml:"mode"`
}

// LogDTO configures log output.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
