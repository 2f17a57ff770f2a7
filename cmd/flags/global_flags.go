package flags

const (
	Config                  = "config"
	EnvironmentConfigPrefix = "env-config-prefix"
	Project                 = "project"
)
