package config

// Docfile represents the structure of the doccache.yaml configuration file.
// An empty Version is treated as the current one.
type Docfile struct {
	Version string   `yaml:"version"`
	Parser  string   `yaml:"parser"`
	Preload []string `yaml:"preload"`
}
