package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/clarktrimble/sabot"

	"okizeme/entity"
	"okizeme/store/duck"
)

// bannerRows are above the header in the community sheet export.
const bannerRows = 3

func main() {

	game := flag.String("game", string(entity.SoulCalibur6), "game id for the output tree")
	dir := flag.String("dir", "data", "output data directory")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <sheet.csv>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	lgr := &sabot.Sabot{Writer: os.Stderr}

	imp, err := duck.New(lgr)
	if err != nil {
		fail(err)
	}
	defer imp.Close()

	byChar, err := imp.ImportSheet(flag.Arg(0), bannerRows)
	if err != nil {
		fail(err)
	}

	err = imp.WriteJSON(*dir, entity.GameID(*game), byChar)
	if err != nil {
		fail(err)
	}

	fmt.Printf("imported %d characters into %s/%s\n", len(byChar), *dir, *game)
}

func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}
