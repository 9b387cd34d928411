// Command tripsettle prints balances and suggested transfers for a trip
// document without running the server.
//
//	tripsettle [-json] trip.yaml
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mmynk/tripledger/internal/calculator"
)

func main() {
	asJSON := flag.Bool("json", false, "print the result as JSON")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-json] <trip.yaml|trip.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	trip, err := loadTrip(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	res := calculator.CalculateTripBalances(trip)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	render(os.Stdout, trip, res)
}
