package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Aleph-Alpha/schemaregistry/v1/logger"
	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

// fileConfig is the layout of the --config file:
//
//	registry:
//	  urls: [http://registry-a:8081, http://registry-b:8081]
//	  username: user
//	  password: secret
//	  timeout: 10s
//	log:
//	  level: info
type fileConfig struct {
	Registry schema_registry.Config `yaml:"registry"`
	Log      logger.Config          `yaml:"log"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
