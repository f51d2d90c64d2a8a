package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/griffnb/imagename-gen/internal/config"
	"github.com/griffnb/imagename-gen/internal/console"
	"github.com/griffnb/imagename-gen/internal/gen"
	"github.com/griffnb/imagename-gen/internal/scanner"
)

const (
	quietFlag     = "quiet"
	debugFlag     = "debug"
	configFlag    = "config"
	overridesFlag = "overrides"
	suffixFlag    = "suffix"
	enumFlag      = "enum"
	importFlag    = "import"
	depthFlag     = "depth"
)

const usageText = `error: Not enough arguments. Aborting
Usage:
imagename-gen <source_directory> <dest_file>
`

var initFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Enable debug mode, disabled by default",
	},
	&cli.StringFlag{
		Name:    configFlag,
		Aliases: []string{"c"},
		Value:   config.DefaultFile,
		Usage:   "YAML file to read generator settings from",
	},
	&cli.StringFlag{
		Name:  overridesFlag,
		Value: gen.DefaultOverridesFile,
		Usage: "File to read name overrides from (skip <name> / replace <name> <identifier>)",
	},
	&cli.StringFlag{
		Name:  suffixFlag,
		Value: scanner.DefaultSuffix,
		Usage: "Suffix marking a directory entry as an image bundle",
	},
	&cli.StringFlag{
		Name:  enumFlag,
		Value: gen.DefaultEnumName,
		Usage: "Name of the generated enumeration",
	},
	&cli.StringFlag{
		Name:  importFlag,
		Value: gen.DefaultImportModule,
		Usage: "Module imported by the generated file; it must provide UIImage and UIImageView (UIKit or a module re-exporting it)",
	},
	&cli.UintFlag{
		Name:  depthFlag,
		Usage: "Nesting depth of the enumeration, one tab per level",
	},
}

func generateAction(ctx *cli.Context) error {
	if ctx.Args().Len() < 2 {
		fmt.Fprint(ctx.App.Writer, usageText)
		return cli.Exit("", 1)
	}

	if ctx.IsSet(debugFlag) {
		console.Logger.DebugLevel = 1
	}
	console.Logger.Quiet = ctx.Bool(quietFlag)

	file, err := config.Load(ctx.String(configFlag))
	if err != nil {
		return cli.Exit("error: "+err.Error(), 1)
	}

	depth := ctx.Uint(depthFlag)
	if file.Depth != nil && !ctx.IsSet(depthFlag) {
		depth = *file.Depth
	}

	err = gen.New().Build(&gen.Config{
		SourceDir:     ctx.Args().Get(0),
		DestFile:      ctx.Args().Get(1),
		Suffix:        stringOption(ctx, suffixFlag, file.Suffix),
		EnumName:      stringOption(ctx, enumFlag, file.EnumName),
		ImportModule:  stringOption(ctx, importFlag, file.ImportModule),
		Depth:         depth,
		OverridesFile: stringOption(ctx, overridesFlag, file.OverridesFile),
		Debugger:      console.Logger,
	})
	if err != nil {
		return cli.Exit("error: "+err.Error(), 1)
	}

	return nil
}

// stringOption prefers an explicitly set flag, then the config file, then the
// flag default.
func stringOption(ctx *cli.Context, name, fromFile string) string {
	if !ctx.IsSet(name) && fromFile != "" {
		return fromFile
	}

	return ctx.String(name)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "imagename-gen"
	app.Version = gen.Version
	app.Usage = "Generate a Swift ImageName enumeration from an asset catalog."
	app.ArgsUsage = "<source_directory> <dest_file>"
	app.Flags = initFlags
	app.Action = generateAction

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
