package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
)
