package config

import (
	"fmt"

	"github.com/gookit/validate"
)

type Validator struct {
	conf *Config
}

func NewValidator(conf *Config) *Validator {
	return &Validator{conf: conf}
}

// Validate checks every section and reports the first violation.
func (cv *Validator) Validate() error {
	sections := []struct {
		name string
		data any
	}{
		{"log", &cv.conf.Log},
		{"report", &cv.conf.Report},
		{"config", cv.conf},
	}
	for _, s := range sections {
		v := validate.Struct(s.data)
		if !v.Validate() {
			return fmt.Errorf("invalid %s config: %s", s.name, v.Errors.One())
		}
	}
	return nil
}
