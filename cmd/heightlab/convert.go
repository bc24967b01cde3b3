package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/TheMirberrys/height-lab-app/internal/validation"
	"github.com/TheMirberrys/height-lab-app/pkg/format"
	"github.com/TheMirberrys/height-lab-app/pkg/units"
)

// =============================================================================
// CONVERT COMMAND
// =============================================================================

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "Convert heights and ages between units",
		Subcommands: []*cli.Command{
			{
				Name:  "height",
				Usage: "Convert a height between cm and inches",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "value", Usage: "Height to convert", Required: true},
					&cli.StringFlag{Name: "from", Value: string(units.Centimeters), Usage: "Source unit (cm, inches)"},
					&cli.StringFlag{Name: "to", Value: string(units.Inches), Usage: "Target unit (cm, inches)"},
				},
				Action: func(c *cli.Context) error {
					from, err := units.ParseHeightUnit(c.String("from"))
					if err != nil {
						return cli.Exit(err.Error(), ExitValidation)
					}
					to, err := units.ParseHeightUnit(c.String("to"))
					if err != nil {
						return cli.Exit(err.Error(), ExitValidation)
					}

					converted := units.FormatConverted(c.String("value"), from, to)
					if converted == "" {
						return cli.Exit(fmt.Sprintf("%q is not a number", c.String("value")), ExitValidation)
					}
					fmt.Fprintf(c.App.Writer, "%s %s\n", converted, to)

					if inches, ok := units.HeightToInches(units.NumberOrZero(c.String("value")), from); ok {
						fmt.Fprintf(c.App.Writer, "%s\n", format.HeightFeetInches(inches))
					}
					return nil
				},
			},
			{
				Name:  "feet",
				Usage: "Combine feet and inches into total inches",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "feet", Usage: "Whole feet"},
					&cli.StringFlag{Name: "inches", Usage: "Whole inches"},
				},
				Action: func(c *cli.Context) error {
					total := units.FeetInchesToTotalInches(c.String("feet"), c.String("inches"))
					fmt.Fprintf(c.App.Writer, "%d inches (%s)\n", total, format.HeightCentimeters(float64(total)))
					return nil
				},
			},
			{
				Name:  "age",
				Usage: "Convert an age between years+months and weeks",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "years", Usage: "Whole years"},
					&cli.IntFlag{Name: "months", Usage: "Additional months (0-11)"},
					&cli.IntFlag{Name: "weeks", Usage: "Age in weeks"},
					&cli.StringFlag{Name: "to", Value: string(units.AgeWeeks), Usage: "Target representation (years-months, weeks)"},
				},
				Action: func(c *cli.Context) error {
					to, err := units.ParseAgeUnit(c.String("to"))
					if err != nil {
						return cli.Exit(err.Error(), ExitValidation)
					}

					age := units.YearsMonths(c.Int("years"), c.Int("months"))
					if c.IsSet("weeks") {
						age = units.Weeks(c.Int("weeks"))
					}
					if err := validation.AgeValid(age); err != nil {
						return cli.Exit(err.Error(), ExitValidation)
					}

					converted := age.In(to)
					if to == units.AgeWeeks {
						fmt.Fprintf(c.App.Writer, "%d weeks\n", converted.Weeks)
					} else {
						fmt.Fprintf(c.App.Writer, "%d years %d months\n", converted.Years, converted.Months)
					}
					fmt.Fprintf(c.App.Writer, "%.2f years\n", age.InYears())
					return nil
				},
			},
		},
	}
}
