// Command eolib-gen reads eo-protocol XML schema files and generates
// the Go source for the structs, enums, and packets they describe.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/cirras/eolib-go/internal/generate"
)

func main() {
	app := cli.NewApp()
	app.Name = "eolib-gen"
	app.Usage = "generate Go protocol code from eo-protocol XML"
	app.Commands = []cli.Command{
		{
			Name:  "generate",
			Usage: "generate Go source files from protocol.xml schema files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "schema-root",
					Value: ".",
					Usage: "directory to search recursively for protocol.xml files",
				},
				cli.StringFlag{
					Name:  "output-root",
					Value: ".",
					Usage: "directory under which generated Go source is written",
				},
			},
			Action: func(c *cli.Context) error {
				return generate.Generate(c.String("schema-root"), c.String("output-root"))
			},
		},
		{
			Name:  "clean",
			Usage: "remove previously generated Go source files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output-root",
					Value: ".",
					Usage: "directory to remove generated Go source from",
				},
			},
			Action: func(c *cli.Context) error {
				return generate.Clean(c.String("output-root"))
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
