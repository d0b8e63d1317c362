package instance_test

import (
	"fmt"

	"github.com/slslab/slsgen/instance"
)

// ExampleGenerate builds an instance from the default configuration and
// reports the consumer-visible shapes, which depend only on the counts.
func ExampleGenerate() {
	cfg := instance.DefaultConfig()

	inst, err := instance.Generate(cfg)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Println("locks:", len(inst.Locks))
	fmt.Println("segments:", len(inst.Segments))
	fmt.Println("ships:", len(inst.Ships))
	fmt.Println("horizon:", inst.RawMaxHorizon)
	// Output:
	// locks: 2
	// segments: 3
	// ships: 6
	// horizon: 1440
}

// ExampleGenerateDirections shows the deterministic prefix split for an
// even 50:50 distribution of six ships.
func ExampleGenerateDirections() {
	cfg := instance.DefaultConfig()

	directions, err := instance.GenerateDirections(cfg)
	if err != nil {
		fmt.Println("directions:", err)
		return
	}

	fmt.Println(directions)
	// Output:
	// [1 1 1 -1 -1 -1]
}
