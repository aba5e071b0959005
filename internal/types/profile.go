package types

// DiagnosisProfile is the YAML description of one diagnosis run:
// which packages, which diagnoses, where results go, and which
// environment to install into.
type DiagnosisProfile struct {
	APIVersion   string   `yaml:"api_version"`
	Packages     []string `yaml:"packages"`
	Requirements string   `yaml:"requirements"`
	Diagnoses    []string `yaml:"diagnoses"`
	Store        string   `yaml:"store"`
	Environment  string   `yaml:"environment"`
	SkipInstall  bool     `yaml:"skip_install"`
}
