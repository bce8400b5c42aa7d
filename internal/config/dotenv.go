// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const (
	// envFileVariable names the environment variable that points at a
	// custom .env file.
	envFileVariable = "ENV_FILE"

	defaultDotEnvFile = ".env"
)

// loadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set.
//
// A missing default ".env" file is not an error; a missing file that was
// requested explicitly is.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
