package builder_test

import (
	"fmt"

	"github.com/katalvlaran/ordtree/builder"
)

// ExampleBuildTree contrasts sorted insertion with median-first insertion of
// the same seven keys.
func ExampleBuildTree() {
	chain, err := builder.BuildTree(nil, builder.Ascending(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	balanced, err := builder.BuildTree(nil, builder.BalancedOrder(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(chain.Height(), chain)
	fmt.Println(balanced.Height(), balanced)
	// Output:
	// 7 (1 . (2 . (3 . (4 . (5 . (6 . (7)))))))
	// 3 (4 (2 (1) (3)) (6 (5) (7)))
}
