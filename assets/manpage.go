//go:build ignore

package main

import (
	"compress/gzip"
	"log"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/vosuolebrogi/repopub/cmd"
)

func main() {
	header := &doc.GenManHeader{
		Title:   "REPOPUB",
		Section: "1",
		Source:  "Repopub",
	}

	f, err := os.Create("repopub.1.gz")
	if err != nil {
		log.Fatal(err)
	}

	zw := gzip.NewWriter(f)

	if err = doc.GenMan(cmd.RootCmd, header, zw); err != nil {
		log.Fatal(err)
	}

	if err = zw.Flush(); err != nil {
		log.Fatal(err)
	}

	if err = zw.Close(); err != nil {
		log.Fatal(err)
	}

	if err = f.Close(); err != nil {
		log.Fatal(err)
	}
}
