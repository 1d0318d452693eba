package utils

import (
	"os"

	"github.com/BurntSushi/toml"
)

// ParseTOMLFile decodes a user-authored TOML file into out.
func ParseTOMLFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, out)
}
