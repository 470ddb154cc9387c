package pkglog

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ModuleDescriptor is the file that names a module when present in the
// working directory.
const ModuleDescriptor = "module.yml"

const unknownModule = "unknown"

type moduleFile struct {
	Name string `yaml:"name"`
}

// ModuleName derives the module identity from the running process: the name
// in module.yml when readable, otherwise the working directory basename.
func ModuleName() string {
	wd, err := os.Getwd()
	if err != nil {
		return unknownModule
	}
	return moduleNameIn(wd)
}

func moduleNameIn(dir string) string {
	if name := readModuleFile(filepath.Join(dir, ModuleDescriptor)); name != "" {
		return name
	}

	base := filepath.Base(dir)
	if base == "." || base == string(filepath.Separator) {
		return unknownModule
	}
	return base
}

func readModuleFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var mf moduleFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return ""
	}
	return strings.TrimSpace(mf.Name)
}
