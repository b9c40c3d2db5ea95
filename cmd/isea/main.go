// Command isea projects coordinates between the sphere and the faces of an
// icosahedron with the Icosahedral Snyder Equal-Area projection.
package main

import (
	goflag "flag"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

func main() {
	// glog registers its flags on the standard flag set.
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	if err := flag.Set("logtostderr", "true"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	root, err := newRootCmd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
