//go:build mage

package main

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const shaderDir = "assets/shaders"

type Build mg.Namespace

// Validates every GLSL source under assets/shaders with glslangValidator.
func (Build) Shaders() error {
	return buildShaders()
}

// Builds the demo binary into bin/.
func (Build) Demo() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/rtdemo", "."), withStream())
	return err
}

func buildShaders() error {
	var sources []string
	err := filepath.WalkDir(shaderDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		switch filepath.Ext(path) {
		case ".vert", ".frag", ".comp":
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, src := range sources {
		if _, err := executeCmd("glslangValidator", withArgs("--target-env", "opengl", src)); err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
	}
	fmt.Printf("%d shaders validated\n", len(sources))
	return nil
}
