package cmd

import (
	"flag"
	"testing"

	"github.com/df07/go-raytracer/internal/log"
	"github.com/urfave/cli"
)

func TestVerbosity(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected log.Level
	}{
		{"Default", nil, log.Notice},
		{"Verbose", []string{"-v"}, log.Info},
		{"Very verbose", []string{"-vv"}, log.Debug},
		{"Both flags", []string{"-v", "-vv"}, log.Debug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := flag.NewFlagSet("test", flag.ContinueOnError)
			set.Bool("v", false, "")
			set.Bool("vv", false, "")
			if err := set.Parse(tt.args); err != nil {
				t.Fatal(err)
			}

			ctx := cli.NewContext(cli.NewApp(), set, nil)
			if got := verbosity(ctx); got != tt.expected {
				t.Errorf("Expected level %v, got %v", tt.expected, got)
			}
		})
	}
}
