// Command route computes a shortest driving route between two coordinates
// on the road graph extracted from an OSM XML export.
//
// Usage:
//
//	route <osm-file> <start lat,lon> <end lat,lon>
package main

import (
	"fmt"
	"log"
	"os"

	"osmroute"
	"osmroute/pkg/geo"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "not enough arguments")
		os.Exit(1)
	}

	osmPath := os.Args[1]
	start, err := geo.ParseCoordinate(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing arguments: %v\n", err)
		os.Exit(1)
	}
	end, err := geo.ParseCoordinate(os.Args[3])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing arguments: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(osmPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	log.Println("Reading OSM file... (this may take a while)")
	g, err := osmroute.Build(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}

	log.Println("Routing...")
	path, err := osmroute.Route(g, start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}

	for _, id := range path {
		fmt.Println(id)
	}
}
