package main

import (
	"errors"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alittlebrighter/thermobox/tui"
	"github.com/alittlebrighter/thermobox/util"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Run the interactive terminal front panel.",
	RunE:  runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	// log lines would draw over the UI
	logging, err := openLogFile()
	if err != nil {
		return err
	}
	if !logging {
		log.SetOutput(io.Discard)
	}

	control, err := config.NewController()
	if err != nil {
		return err
	}

	log.Println("Starting temperature control UI.")
	program := tea.NewProgram(tui.New(control, config), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	log.Printf("Stopped in state %s at %s.", control.State(), util.FormatTemperature(control.Temperature(), config.UnitPreference))
	return nil
}
