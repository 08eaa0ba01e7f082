package server

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort        = "8080"
	DefaultDefaultList = 1
	DefaultLogLevel    = "info"
)

type ServerConfig struct {
	// Connection string for database.
	//
	// example: postgres://postgres@localhost:5432/todoapp
	DBURI string `yaml:"dburi"`

	// port number where the server listens.
	ServerPort string `yaml:"port"`

	// path to the schema repository directory.
	//
	// When empty, the server does not check database schema.
	SchemaRepository string `yaml:"schemaRepository"`

	// id of the list shown at "/".
	DefaultList int `yaml:"defaultList"`

	// debug|info|warn|error|off
	LogLevel string `yaml:"loglevel"`
}

func LoadServerConfig(filepath string) (*ServerConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

// Unmarshal reads yaml formatted config, and fills defaults.
func Unmarshal(conf []byte) (*ServerConfig, error) {
	var out ServerConfig
	if err := yaml.Unmarshal(conf, &out); err != nil {
		return nil, err
	}

	if out.DBURI == "" {
		return nil, errors.New(`config: "dburi" is required`)
	}
	if out.ServerPort == "" {
		out.ServerPort = DefaultPort
	}
	if out.DefaultList == 0 {
		out.DefaultList = DefaultDefaultList
	}
	if out.DefaultList < 0 {
		return nil, fmt.Errorf(`config: "defaultList" should be positive: %d`, out.DefaultList)
	}
	if out.LogLevel == "" {
		out.LogLevel = DefaultLogLevel
	}
	return &out, nil
}
