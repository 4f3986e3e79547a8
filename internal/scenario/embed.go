package scenario

import (
	"embed"
	"io/fs"
)

//go:embed builtin/*.yaml
var builtinFiles embed.FS

// Builtin returns the scenarios shipped with the binary.
func Builtin() ([]*Scenario, error) {
	sub, err := fs.Sub(builtinFiles, "builtin")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub, "*.yaml", "builtin")
}
