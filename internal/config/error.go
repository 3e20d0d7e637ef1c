package config

type ConfigLoadError struct {
	path string
	err  error
}

func (e *ConfigLoadError) Error() string {
	return "failed to load config " + e.path + ": " + e.err.Error()
}

func (e *ConfigLoadError) Unwrap() error {
	return e.err
}
