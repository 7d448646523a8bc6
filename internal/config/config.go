package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/stemsi/registrar/internal/repository"
	"github.com/stemsi/registrar/internal/source"
	"gopkg.in/yaml.v3"
)

// Default file names inside the data directory.
const (
	MajorsFile      = "majors.txt"
	StudentsFile    = "students.txt"
	InstructorsFile = "instructors.txt"
	GradesFile      = "grades.txt"
)

// Config holds all application configuration.
type Config struct {
	DataDir   string `yaml:"data_dir" validate:"required"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format" validate:"oneof=pretty json"`
	Format    string `yaml:"format" validate:"oneof=table json"`
	// Separator is the default field separator for every source. Escape
	// sequences such as `\t` are expanded when sources are built.
	Separator string `yaml:"separator" validate:"required"`
	// MajorsHeader skips the first line of the majors file.
	MajorsHeader bool `yaml:"majors_header"`
	// SourcesFile optionally points at a YAML file overriding individual sources.
	SourcesFile string `yaml:"sources_file"`
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		DataDir:      getEnv("REGISTRAR_DATA_DIR", "."),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "pretty"),
		Format:       getEnv("REGISTRAR_FORMAT", "table"),
		Separator:    getEnv("REGISTRAR_SEPARATOR", `\t`),
		MajorsHeader: getEnvBool("REGISTRAR_MAJORS_HEADER", true),
		SourcesFile:  getEnv("REGISTRAR_SOURCES", ""),
	}
}

// sourceOverride is one entry of the sources file. Unset keys keep the
// defaults derived from Config.
type sourceOverride struct {
	Path      *string `yaml:"path"`
	Separator *string `yaml:"separator"`
	Header    *bool   `yaml:"header"`
}

type sourcesFile struct {
	Majors      sourceOverride `yaml:"majors"`
	Students    sourceOverride `yaml:"students"`
	Instructors sourceOverride `yaml:"instructors"`
	Grades      sourceOverride `yaml:"grades"`
}

// Sources builds the per-file source configuration: defaults from the data
// directory first, then any overrides from the sources file. Relative paths
// in the sources file are resolved against the data directory.
func (c *Config) Sources() (repository.Sources, error) {
	src := repository.Sources{
		Majors:      c.source(MajorsFile, 3, c.MajorsHeader),
		Students:    c.source(StudentsFile, 3, false),
		Instructors: c.source(InstructorsFile, 3, false),
		Grades:      c.source(GradesFile, 4, false),
	}
	if c.SourcesFile == "" {
		return src, nil
	}

	data, err := os.ReadFile(c.SourcesFile)
	if err != nil {
		return src, fmt.Errorf("read sources file: %w", err)
	}
	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return src, fmt.Errorf("parse sources file: %w", err)
	}

	c.apply(&src.Majors, file.Majors)
	c.apply(&src.Students, file.Students)
	c.apply(&src.Instructors, file.Instructors)
	c.apply(&src.Grades, file.Grades)
	return src, nil
}

func (c *Config) source(file string, fields int, header bool) source.Config {
	return source.Config{
		Name:      file,
		Path:      filepath.Join(c.DataDir, file),
		Separator: unescape(c.Separator),
		Fields:    fields,
		Header:    header,
	}
}

func (c *Config) apply(dst *source.Config, o sourceOverride) {
	if o.Path != nil {
		p := *o.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(c.DataDir, p)
		}
		dst.Path = p
		dst.Name = filepath.Base(p)
	}
	if o.Separator != nil {
		dst.Separator = unescape(*o.Separator)
	}
	if o.Header != nil {
		dst.Header = *o.Header
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// unescape turns escape sequences such as `\t` into their literal characters
// so separators can be written in .env and YAML files. Input that is not a
// valid escape sequence is returned unchanged.
func unescape(s string) string {
	u, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return u
}
