package adapters

import "path/filepath"

// envBinary resolves a tool inside a virtual environment's bin folder.
func envBinary(env string, name string) string {
	return filepath.Join(env, "bin", name)
}

// pythonPath resolves the interpreter for an environment, falling back
// to python3 on PATH when no environment is given.
func pythonPath(env string) string {
	if env == "" {
		return "python3"
	}
	return envBinary(env, "python")
}
