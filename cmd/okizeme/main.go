package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"

	"okizeme"
	"okizeme/prefs"
	"okizeme/store/movedata"
	"okizeme/util"
)

const (
	layoutFile = "okizeme.yml"
	prefsFile  = "okizeme-prefs.yml"
	logFile    = "okizeme.log"
)

func main() {

	logWriter := util.OpenLog(logFile, 0644)
	defer util.CloseLog(logWriter)

	lgr := &sabot.Sabot{Writer: logWriter}
	ctx := context.Background()

	layout, err := okizeme.LoadLayout(layoutFile)
	if err != nil {
		fail(err)
	}

	pf, err := prefs.Load(prefsFile)
	if err != nil {
		fail(err)
	}

	store := movedata.New(layout.DataDir, lgr)

	model, err := okizeme.NewModel(ctx, store, layout, pf, prefsFile, lgr)
	if err != nil {
		fail(err)
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}
