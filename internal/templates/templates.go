// Package templates holds the file contents the scaffolder writes and the
// location of the bundled base compiler configuration.
package templates

import "path/filepath"

// EntrySource is the AssemblyScript entry point written to assembly/index.ts.
const EntrySource = `// The entry file of your WebAssembly module.

export function add(a: i32, b: i32): i32 {
  return a + b;
}
`

// BuildIgnore keeps compiled artifacts out of source control.
const BuildIgnore = `*.wasm
*.wasm.map
*.d.ts
`

// Loader is the Node.js entry point written to index.js. It instantiates the
// optimized build and re-exports its exports.
const Loader = `const fs = require("fs");
const path = require("path");
const compiled = new WebAssembly.Module(
  fs.readFileSync(path.resolve(__dirname, "build", "optimized.wasm"))
);
const imports = {
  env: {
    abort(_msg, _file, line, column) {
      console.error("abort called at index.ts:" + line + ":" + column);
    }
  }
};
Object.defineProperty(module, "exports", {
  get: () => new WebAssembly.Instance(compiled, imports).exports
});
`

// Build commands wired into package.json.
const (
	ScriptBuildUntouched = "asc assembly/index.ts -b build/untouched.wasm -t build/untouched.wat --sourceMap --validate --debug"
	ScriptBuildOptimized = "asc assembly/index.ts -b build/optimized.wasm -t build/optimized.wat --sourceMap --validate --optimize"
	ScriptBuildAll       = "npm run asbuild:untouched && npm run asbuild:optimized"
)

// BaseConfig returns the path of the base TypeScript configuration shipped
// with the tool, resolved next to the executable.
func BaseConfig(exe string) string {
	return filepath.Join(filepath.Dir(exe), "std", "assembly.json")
}
