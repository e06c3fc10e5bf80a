/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

// ion-go reads, filters and converts Ion documents.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/Ion-rs/ion/ion"
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	app := &cli.App{
		Name:  "ion-go",
		Usage: "read, filter and convert Ion documents",
		Commands: []*cli.Command{
			fmtCommand(),
			sectionsCommand(),
			getCommand(),
			jsonCommand(),
			yamlCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("ion-go: %v", err))
		os.Exit(1)
	}
}

var sectionFlag = &cli.StringSliceFlag{
	Name:    "section",
	Aliases: []string{"s"},
	Usage:   "parse only the named `SECTION` (repeatable, stops scanning early)",
}

// loadDocument parses the document named by the first argument, or standard
// input when the argument is absent or "-".
func loadDocument(c *cli.Context) (*ion.Document, error) {
	path := c.Args().First()

	var text string
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		text = string(data)
	}

	if accepted := c.StringSlice("section"); len(accepted) > 0 {
		return ion.ParseFiltered(text, accepted)
	}
	return ion.Parse(text)
}

func fmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "reprint a document in canonical form",
		ArgsUsage: "[FILE]",
		Flags:     []cli.Flag{sectionFlag},
		Action: func(c *cli.Context) error {
			doc, err := loadDocument(c)
			if err != nil {
				return err
			}
			return ion.NewTextWriter(os.Stdout).WriteDocument(doc)
		},
	}
}

func sectionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "sections",
		Usage:     "list section names",
		ArgsUsage: "[FILE]",
		Action: func(c *cli.Context) error {
			doc, err := loadDocument(c)
			if err != nil {
				return err
			}
			header := color.New(color.FgCyan, color.Bold)
			doc.Sections(func(name string, s *ion.Section) bool {
				header.Fprintf(os.Stdout, "%s", name)
				fmt.Printf("\t%d keys\t%d rows\n", len(s.Dict), len(s.Rows))
				return true
			})
			return nil
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print a section, or a single value from its dictionary",
		ArgsUsage: "FILE SECTION [KEY]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("get requires FILE and SECTION arguments")
			}
			name := c.Args().Get(1)

			doc, err := ion.LoadFileFiltered(c.Args().Get(0), []string{name})
			if err != nil {
				return err
			}
			section, err := doc.Fetch(name)
			if err != nil {
				return err
			}

			if key := c.Args().Get(2); key != "" {
				v, err := section.Fetch(key)
				if err != nil {
					return err
				}
				fmt.Println(v.Text())
				return nil
			}

			fmt.Print(section.String())
			return nil
		},
	}
}

func jsonCommand() *cli.Command {
	return &cli.Command{
		Name:      "json",
		Usage:     "print the document's JSON projection",
		ArgsUsage: "[FILE]",
		Flags:     []cli.Flag{sectionFlag},
		Action: func(c *cli.Context) error {
			doc, err := loadDocument(c)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(doc.Project(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func yamlCommand() *cli.Command {
	return &cli.Command{
		Name:      "yaml",
		Usage:     "print the document's YAML projection",
		ArgsUsage: "[FILE]",
		Flags:     []cli.Flag{sectionFlag},
		Action: func(c *cli.Context) error {
			doc, err := loadDocument(c)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(doc.Project())
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
}
