package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/dixieflatline76/Wiggle/config"
	"github.com/dixieflatline76/Wiggle/ui"
	"github.com/dixieflatline76/Wiggle/util/log"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-version" || os.Args[1] == "--version") {
		fmt.Println(config.UserAgent())
		return
	}

	log.Printf("Starting %s %s", config.AppName, config.AppVersion)

	a := app.NewWithID(config.AppID)
	wa := ui.NewWiggleApp(a)

	// An image path may be passed on the command line, e.g. from "Open with".
	if len(os.Args) > 1 {
		if err := wa.OpenPath(os.Args[1]); err != nil {
			log.Printf("Could not open %s: %v", os.Args[1], err)
		}
	}

	wa.Run()
}
