package freq_test

import (
	"fmt"

	"github.com/agbru/gpsdocfg/internal/freq"
)

func ExampleParse() {
	for _, literal := range []string{"1000.31", "10M", "10_1/7k"} {
		r, err := freq.Parse(literal)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}
	// Output:
	// 100031/100
	// 10000000/1
	// 71000/7
}
