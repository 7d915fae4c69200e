// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types. Only variables that
// are actually set are applied, so unset ones keep the zero value and do not
// override defaults during the merge.
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{UseFieldNameByDefault: false})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
