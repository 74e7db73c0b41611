package config

// ProjectType represents the kind of JavaScript project being linted
type ProjectType string

const (
	ProjectTypeGeneric ProjectType = "generic"
	ProjectTypeReact   ProjectType = "react"
	ProjectTypeVue     ProjectType = "vue"
	ProjectTypeNode    ProjectType = "node"
)

// Strictness represents how aggressive the rule configuration is
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// ProjectPreset holds file patterns tuned for a project type
type ProjectPreset struct {
	IncludePatterns []string
	ExcludePatterns []string
}

// StrictnessPreset holds rule selection tuned for a strictness level
type StrictnessPreset struct {
	DisabledRules []string
	MinSeverity   string
}

// GetProjectPresets returns the file pattern presets per project type
func GetProjectPresets() map[ProjectType]ProjectPreset {
	return map[ProjectType]ProjectPreset{
		ProjectTypeGeneric: {
			IncludePatterns: []string{
				"**/*.js", "**/*.ts", "**/*.jsx", "**/*.tsx",
				"**/*.mjs", "**/*.cjs",
			},
			ExcludePatterns: []string{
				"node_modules", "dist", "build", "coverage",
				"*.min.js", "*.bundle.js",
			},
		},
		ProjectTypeReact: {
			IncludePatterns: []string{
				"src/**/*.js", "src/**/*.jsx",
				"src/**/*.ts", "src/**/*.tsx",
			},
			ExcludePatterns: []string{
				"node_modules", "build", ".next", "coverage",
				"public", "*.min.js",
			},
		},
		ProjectTypeVue: {
			IncludePatterns: []string{
				"src/**/*.js", "src/**/*.ts",
			},
			ExcludePatterns: []string{
				"node_modules", "dist", ".nuxt", "coverage",
				"public", "*.min.js",
			},
		},
		ProjectTypeNode: {
			IncludePatterns: []string{
				"**/*.js", "**/*.mjs", "**/*.cjs", "**/*.ts",
			},
			ExcludePatterns: []string{
				"node_modules", "dist", "coverage", "*.min.js",
			},
		},
	}
}

// GetStrictnessPresets returns rule selection presets per strictness
func GetStrictnessPresets() map[Strictness]StrictnessPreset {
	return map[Strictness]StrictnessPreset{
		StrictnessRelaxed: {
			DisabledRules: []string{"no-console", "no-var", "await-in-loop"},
			MinSeverity:   "warning",
		},
		StrictnessStandard: {
			DisabledRules: []string{"no-console"},
			MinSeverity:   "info",
		},
		StrictnessStrict: {
			DisabledRules: []string{},
			MinSeverity:   "info",
		},
	}
}

// BuildConfig assembles a configuration from the selected presets
func BuildConfig(projectType ProjectType, strictness Strictness) *Config {
	config := DefaultConfig()

	if preset, ok := GetProjectPresets()[projectType]; ok {
		config.Analysis.IncludePatterns = preset.IncludePatterns
		config.Analysis.ExcludePatterns = preset.ExcludePatterns
	}
	if preset, ok := GetStrictnessPresets()[strictness]; ok {
		config.Rules.Disabled = preset.DisabledRules
		config.Rules.MinSeverity = preset.MinSeverity
	}

	return config
}

// GetFullConfigTemplate returns a commented YAML template covering all
// configuration options
func GetFullConfigTemplate(projectType ProjectType, strictness Strictness) string {
	config := BuildConfig(projectType, strictness)

	template := `# rulescan configuration file
# JavaScript/TypeScript lint rule engine

rules:
  # Restrict the run to specific rule codes (empty = all built-in rules)
  enabled: []

  # Rule codes to disable
  disabled:
`
	if len(config.Rules.Disabled) == 0 {
		template += "    []\n"
	} else {
		for _, code := range config.Rules.Disabled {
			template += "    - " + code + "\n"
		}
	}

	template += `
  # Minimum severity to report: info, warning, error
  min_severity: ` + config.Rules.MinSeverity + `

output:
  # Output format: text, json, yaml, csv
  format: text

  # Show correction guidance alongside each diagnostic
  show_details: false

  # Sort diagnostics by: location, severity, rule
  sort_by: location

analysis:
  # File patterns to include
  include_patterns:
`
	for _, pattern := range config.Analysis.IncludePatterns {
		template += "    - \"" + pattern + "\"\n"
	}

	template += `
  # File patterns to exclude
  exclude_patterns:
`
	for _, pattern := range config.Analysis.ExcludePatterns {
		template += "    - \"" + pattern + "\"\n"
	}

	template += `
  # Analyze directories recursively
  recursive: true

  # Skip files matched by .gitignore
  respect_gitignore: true

performance:
  # Concurrent file analyses (0 = number of CPUs)
  max_goroutines: 0

  # Timeout for the whole run in seconds
  timeout_seconds: 300
`

	return template
}

// GetMinimalConfigTemplate returns a short starter configuration
func GetMinimalConfigTemplate() string {
	return `# rulescan configuration file

rules:
  min_severity: info

output:
  format: text

analysis:
  exclude_patterns:
    - node_modules
    - dist
    - "*.min.js"
`
}
