// Command mapcheck parses every map listed in a level index and reports
// entity counts and format errors without starting the game.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.design/x/clipboard"

	"github.com/milk9111/sheetrunner/prefabs"
	"github.com/milk9111/sheetrunner/system"
)

func main() {
	view := flag.Bool("view", false, "browse the maps in a terminal viewer")
	copyReport := flag.Bool("copy", false, "copy the report to the clipboard")
	flag.Parse()

	basePath := "."
	if flag.NArg() > 0 {
		basePath = flag.Arg(0)
	}

	game, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("game spec: %v", err)
	}

	dataDir := filepath.Join(basePath, game.Layout.DataDir)
	ids, err := system.ReadIndex(filepath.Join(dataDir, game.Layout.Index))
	if err != nil {
		log.Fatal(err)
	}

	results := checkLevels(dataDir, game.Layout.Map, ids)
	report := formatReport(results)
	fmt.Print(report)

	if *copyReport {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard unavailable: %v", err)
		} else {
			<-clipboard.Write(clipboard.FmtText, []byte(report))
		}
	}

	if *view {
		if err := runViewer(results); err != nil {
			log.Printf("viewer: %v", err)
		}
	}

	if invalid(results) > 0 {
		os.Exit(1)
	}
}
