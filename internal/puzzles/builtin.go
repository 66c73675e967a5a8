package puzzles

import (
	"embed"
	"fmt"
)

//go:embed defs/*.yaml
var builtinFS embed.FS

// init registers every embedded puzzle definition. A malformed embedded
// puzzle is a build defect, so failures panic.
func init() {
	entries, err := builtinFS.ReadDir("defs")
	if err != nil {
		panic(fmt.Sprintf("puzzles: cannot read embedded defs: %v", err))
	}
	for _, entry := range entries {
		data, err := builtinFS.ReadFile("defs/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("puzzles: cannot read %s: %v", entry.Name(), err))
		}
		p, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("puzzles: bad embedded puzzle %s: %v", entry.Name(), err))
		}
		Register(p)
	}
}
