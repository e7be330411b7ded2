package nodetop_test

import (
	"fmt"

	"github.com/katalvlaran/norman/nodetop"
)

func ExampleMark() {
	out, n := nodetop.Mark("(w / want-01 :ARG0 (b / boy) :ARG1 b)")
	fmt.Println(out)
	fmt.Println(n)
	// Output:
	// (w / want-01 :TOP b :ARG0 (b / boy) :ARG1 b)
	// 1
}
