package config

import (
	"gopkg.in/yaml.v3"
)

// YAML implements koanf.Parser on top of yaml.v3.
type YAML struct{}

// YAMLParser returns a koanf parser for YAML config files.
func YAMLParser() *YAML {
	return &YAML{}
}

func (p *YAML) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *YAML) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
