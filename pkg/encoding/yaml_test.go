package encoding

import (
	"os"
	"path/filepath"
	"testing"
)

// testConfigurationYAML is a test structure to use for YAML decoding tests.
type testConfigurationYAML struct {
	Apply struct {
		SkipCRC bool   `yaml:"skipCRC"`
		Comment string `yaml:"comment"`
	} `yaml:"apply"`
}

// testConfigurationYAMLString is the YAML-encoded form of the test data.
const testConfigurationYAMLString = `
apply:
  skipCRC: true
  comment: "trusted patches only"
`

func TestLoadAndUnmarshalNonExistentPath(t *testing.T) {
	if !os.IsNotExist(LoadAndUnmarshal("/this/does/not/exist", nil)) {
		t.Error("expected LoadAndUnmarshal to pass through non-existence errors")
	}
}

func TestLoadAndUnmarshalUnmarshalFail(t *testing.T) {
	// Write non-YAML content to a temporary file.
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0600); err != nil {
		t.Fatal("unable to write temporary file:", err)
	}

	// Attempt to load and unmarshal.
	value := &testConfigurationYAML{}
	if LoadAndUnmarshalYAML(path, value) == nil {
		t.Error("expected LoadAndUnmarshalYAML to return an error")
	}
}

func TestLoadAndUnmarshalYAML(t *testing.T) {
	// Write the test YAML to a temporary file.
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigurationYAMLString), 0600); err != nil {
		t.Fatal("unable to write temporary file:", err)
	}

	// Attempt to load and unmarshal.
	value := &testConfigurationYAML{}
	if err := LoadAndUnmarshalYAML(path, value); err != nil {
		t.Fatal("LoadAndUnmarshalYAML failed:", err)
	}

	// Verify test values.
	if !value.Apply.SkipCRC {
		t.Error("test configuration skipCRC mismatch: false != true")
	}
	if value.Apply.Comment != "trusted patches only" {
		t.Error("test configuration comment mismatch:", value.Apply.Comment)
	}
}

func TestLoadAndUnmarshalYAMLStrict(t *testing.T) {
	// Unknown keys are treated as errors under strict decoding.
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("unknown: true\n"), 0600); err != nil {
		t.Fatal("unable to write temporary file:", err)
	}
	value := &testConfigurationYAML{}
	if LoadAndUnmarshalYAML(path, value) == nil {
		t.Error("expected strict decoding to reject unknown keys")
	}
}
