package domain

// DefaultConfigFile is the config file name looked up by the CLI.
const DefaultConfigFile = "doccache.yaml"

// ConfigVersion is the only config schema version understood. An omitted version means this one.
const ConfigVersion = "1"

// DefaultParser is the parser used when none is configured.
const DefaultParser = "json"

// Settings holds the CLI configuration.
type Settings struct {
	// Parser names the document syntax, "json" or "yaml".
	Parser string
	// Preload lists paths loaded into the shared cache before a command runs.
	Preload []string
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{Parser: DefaultParser}
}
