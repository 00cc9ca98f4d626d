package tracking

import (
	"errors"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "tracking",
		Usage: "Provides train position lookups",
		Subcommands: []*cli.Command{
			{
				Name:      "lookup",
				Usage:     "resolve the train position for a PNR",
				ArgsUsage: "<pnr>",
				Action: func(c *cli.Context) error {
					pnrNumber := c.Args().First()
					if pnrNumber == "" {
						return errors.New("a PNR number is required")
					}

					trackingInfo := Resolve(pnrNumber)
					if trackingInfo == nil {
						return errors.New("could not resolve train position")
					}

					pretty.Println(trackingInfo)

					return nil
				},
			},
		},
	}
}
