package debug

import (
	"fmt"
	"os"

	"github.com/signadot/sphinxmd/ast"
)

// Logf is fmt.Fprintf to stderr, with ast nodes in args rendered as pandoc
// JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		var (
			data []byte
			err  error
		)
		switch x := args[i].(type) {
		case ast.Block:
			data, err = ast.MarshalBlock(x)
		case ast.Inline:
			data, err = ast.MarshalInline(x)
		default:
			continue
		}
		if err != nil {
			args[i] = fmt.Sprintf("[raw %s] %v", args[i].(ast.Node).Kind(), args[i])
			continue
		}
		args[i] = string(data)
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
