package ui

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Wiggle/config"
	"github.com/dixieflatline76/Wiggle/util"
	"github.com/dixieflatline76/Wiggle/util/log"
)

// ShowAbout shows the version and, when enabled, checks for a newer release.
func (wa *WiggleApp) ShowAbout() {
	about, err := wa.assetMgr.GetText("about.txt")
	if err != nil {
		about = config.AppName
	}

	status := widget.NewLabel("")
	body := container.NewVBox(
		CreateSectionTitleLabel(fmt.Sprintf("%s %s", config.AppName, config.AppVersion)),
		CreateSettingDescriptionLabel(about),
		status,
	)
	dialog.ShowCustom("About "+config.AppName, "Close", body, wa.window)

	if !wa.cfg.GetUpdateCheckEnabled() {
		return
	}
	status.SetText("Checking for updates…")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), aboutUpdateTimeout*time.Second)
		defer cancel()
		result, err := wa.updates.Check(ctx)
		fyne.Do(func() {
			showUpdateStatus(body, status, result, err)
		})
	}()
}

// showUpdateStatus renders the outcome of an update check into body.
func showUpdateStatus(body *fyne.Container, status *widget.Label, result *util.CheckForUpdatesResult, err error) {
	if err != nil {
		log.Printf("Update check failed: %v", err)
		status.SetText("Could not check for updates")
		return
	}
	if !result.UpdateAvailable {
		status.SetText(fmt.Sprintf("You are up to date (%s)", result.CurrentVersion))
		return
	}
	status.SetText("")
	link, parseErr := url.Parse(result.ReleaseURL)
	if parseErr != nil || result.ReleaseURL == "" {
		status.SetText(updateLabelPrefix + result.LatestVersion)
		return
	}
	body.Add(widget.NewHyperlink(updateLabelPrefix+result.LatestVersion, link))
	body.Refresh()
}
