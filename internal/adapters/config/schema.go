package config

// Configfile represents the structure of the reattach.yaml configuration file.
type Configfile struct {
	Version      string            `yaml:"version"`
	TmpRoot      string            `yaml:"tmpRoot"`
	Applications []*ApplicationDTO `yaml:"applications"`
}

// ApplicationDTO represents an application definition in the configuration.
type ApplicationDTO struct {
	Name     string   `yaml:"name"`
	Versions []string `yaml:"versions"`
	Checkout string   `yaml:"checkout"`
	Tests    []string `yaml:"tests"`
}
