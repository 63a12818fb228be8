package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"

	"github.com/df07/go-raytracer/pkg/renderer"
)

// SystemInfo prints the host resources that determine the default worker count.
func SystemInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	physical, err := cpu.Counts(false)
	if err != nil {
		return fmt.Errorf("failed to count cpus: %w", err)
	}
	infos, err := cpu.Info()
	if err != nil {
		return fmt.Errorf("failed to read cpu info: %w", err)
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("failed to read memory info: %w", err)
	}

	model := "unknown"
	if len(infos) > 0 {
		model = infos[0].ModelName
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk([][]string{
		{"CPU model", model},
		{"Physical cores", fmt.Sprintf("%d", physical)},
		{"Logical cores", fmt.Sprintf("%d", renderer.DefaultWorkers())},
		{"GOMAXPROCS", fmt.Sprintf("%d", runtime.GOMAXPROCS(0))},
		{"Total memory", fmt.Sprintf("%d MiB", vm.Total/(1<<20))},
		{"Available memory", fmt.Sprintf("%d MiB (%.1f %% used)", vm.Available/(1<<20), vm.UsedPercent)},
	})
	table.SetFooter([]string{"Default workers", fmt.Sprintf("%d", renderer.DefaultWorkers())})
	table.Render()

	logger.Noticef("system information\n%s", buf.String())
	return nil
}
