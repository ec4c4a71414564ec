package debug

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/sf-git-merge-driver/ir"
)

// Logf prints to stderr, rendering tree arguments as indented YAML.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = yamlArg(x)
		case []*ir.Node:
			args[i] = yamlArg(ir.FromSlice(x))
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func yamlArg(x *ir.Node) string {
	d, err := ir.ToYAML(x)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return "\n   |" + strings.ReplaceAll(strings.TrimRight(string(d), "\n"), "\n", "\n   |")
}
