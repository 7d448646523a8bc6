package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"REGISTRAR_DATA_DIR", "LOG_LEVEL", "LOG_FORMAT", "REGISTRAR_FORMAT", "REGISTRAR_SEPARATOR", "REGISTRAR_MAJORS_HEADER", "REGISTRAR_SOURCES"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, `\t`, cfg.Separator)
	assert.True(t, cfg.MajorsHeader)
	assert.Empty(t, cfg.SourcesFile)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("REGISTRAR_DATA_DIR", "/data")
	t.Setenv("REGISTRAR_SEPARATOR", "|")
	t.Setenv("REGISTRAR_MAJORS_HEADER", "false")
	t.Setenv("REGISTRAR_FORMAT", "json")

	cfg := Load()

	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, "|", cfg.Separator)
	assert.False(t, cfg.MajorsHeader)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_InvalidBoolFallsBack(t *testing.T) {
	t.Setenv("REGISTRAR_MAJORS_HEADER", "maybe")
	assert.True(t, Load().MajorsHeader)
}

func TestSources_Defaults(t *testing.T) {
	cfg := &Config{DataDir: "/data", Separator: `\t`, MajorsHeader: true}

	src, err := cfg.Sources()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/data", MajorsFile), src.Majors.Path)
	assert.Equal(t, "majors.txt", src.Majors.Name)
	assert.Equal(t, "\t", src.Majors.Separator)
	assert.Equal(t, 3, src.Majors.Fields)
	assert.True(t, src.Majors.Header)

	assert.Equal(t, 3, src.Students.Fields)
	assert.False(t, src.Students.Header)
	assert.Equal(t, 3, src.Instructors.Fields)
	assert.Equal(t, 4, src.Grades.Fields)
	assert.Equal(t, filepath.Join("/data", GradesFile), src.Grades.Path)
}

func TestSources_YAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sources.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
majors:
  header: false
students:
  path: people.csv
  separator: ","
grades:
  path: /abs/grades.txt
  separator: '\t'
  header: true
`), 0o644))

	cfg := &Config{DataDir: dir, Separator: "|", MajorsHeader: true, SourcesFile: file}
	src, err := cfg.Sources()
	require.NoError(t, err)

	assert.False(t, src.Majors.Header)
	assert.Equal(t, "|", src.Majors.Separator)

	assert.Equal(t, filepath.Join(dir, "people.csv"), src.Students.Path)
	assert.Equal(t, "people.csv", src.Students.Name)
	assert.Equal(t, ",", src.Students.Separator)
	assert.Equal(t, 3, src.Students.Fields)

	assert.Equal(t, filepath.Join(dir, InstructorsFile), src.Instructors.Path)

	assert.Equal(t, "/abs/grades.txt", src.Grades.Path)
	assert.Equal(t, "\t", src.Grades.Separator)
	assert.True(t, src.Grades.Header)
	assert.Equal(t, 4, src.Grades.Fields)
}

func TestSources_BadFile(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{DataDir: dir, Separator: "|", SourcesFile: filepath.Join(dir, "missing.yaml")}
	_, err := cfg.Sources()
	assert.ErrorContains(t, err, "read sources file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("majors: [unclosed"), 0o644))
	cfg.SourcesFile = bad
	_, err = cfg.Sources()
	assert.ErrorContains(t, err, "parse sources file")
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "\t", unescape(`\t`))
	assert.Equal(t, "|", unescape("|"))
	assert.Equal(t, "\t", unescape("\t"))
	assert.Equal(t, `"`, unescape(`"`))
	assert.Equal(t, ", ", unescape(", "))
}
