package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-raytracer/pkg/scene"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Integrator", "Needs --obj", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{
			info.ID,
			info.Name,
			info.Integrator,
			fmt.Sprintf("%t", info.NeedsOBJ),
			info.Description,
		})
	}
	table.Render()

	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
