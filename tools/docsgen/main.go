// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes the command reference for frontendcfg as markdown. It reads
// the flags straight from the command tree so the reference cannot drift.
//
//	go run ./tools/docsgen docs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/frontendcfg/frontendcfg/internal/command"
	"github.com/frontendcfg/frontendcfg/internal/meta"
	"github.com/frontendcfg/frontendcfg/internal/version"
)

const referenceTemplate = `# {{ .Name }}

{{ .Usage }}

Generated {{ .Date }} for version {{ .Version }}.
{{ range .Commands }}
## {{ .Name }}

{{ .Usage }}

    {{ .UsageText }}

| flag | environment | description |
|---|---|---|
{{- range .Flags }}
| {{ .Names }} | {{ .Env }} | {{ .Usage }} |
{{- end }}
{{ end -}}
`

type FlagDoc struct {
	Names string
	Env   string
	Usage string
}

type CommandDoc struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []FlagDoc
}

type TemplateData struct {
	Name     string
	Usage    string
	Date     string
	Version  string
	Commands []CommandDoc
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	if err := os.MkdirAll(docs, 0o755); err != nil { //nolint:mnd
		panic(err)
	}

	path := filepath.Join(docs, "frontendcfg.md")
	file, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	fmt.Println("Generating", path)
	if err := render(file, command.NewApp(meta.Meta{}), time.Now()); err != nil {
		panic(err)
	}
}

// render writes the reference for app and its subcommands to w.
func render(w io.Writer, app *cli.Command, now time.Time) error {
	tmpl, err := template.New("reference").Parse(referenceTemplate)
	if err != nil {
		return err
	}

	data := TemplateData{
		Name:    app.Name,
		Usage:   app.Usage,
		Date:    now.Format("January 2, 2006"),
		Version: version.Version,
	}
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		data.Commands = append(data.Commands, commandDoc(cmd))
	}

	return tmpl.Execute(w, data)
}

func commandDoc(cmd *cli.Command) CommandDoc {
	doc := CommandDoc{
		Name:      cmd.Name,
		Usage:     cmd.Usage,
		UsageText: cmd.UsageText,
	}

	for _, f := range cmd.Flags {
		names := make([]string, 0, len(f.Names()))
		for _, n := range f.Names() {
			prefix := "--"
			if len(n) == 1 {
				prefix = "-"
			}
			names = append(names, "`"+prefix+n+"`")
		}

		fd := FlagDoc{Names: strings.Join(names, ", ")}
		if dg, ok := f.(cli.DocGenerationFlag); ok {
			fd.Usage = dg.GetUsage()
			if env := dg.GetEnvVars(); len(env) > 0 {
				fd.Env = "`" + strings.Join(env, "`, `") + "`"
			}
		}
		doc.Flags = append(doc.Flags, fd)
	}

	return doc
}
