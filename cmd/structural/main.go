package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/reoring/structural"
	"github.com/reoring/structural/i18n"
	"github.com/reoring/structural/jsonschema"
	"github.com/reoring/structural/schema"
	"github.com/reoring/structural/schemadoc"
)

// Exit codes. extends maps its result onto exitOK, exitFalse and exitUnion.
const (
	exitOK    = 0
	exitFalse = 1
	exitUsage = 2
	exitUnion = 3
)

func main() {
	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, color))
}

func run(args []string, stdout, stderr io.Writer, color bool) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	c := &cli{stdout: stdout, stderr: stderr, color: color}
	switch args[0] {
	case "extends":
		return c.extendsCmd(args[1:])
	case "select":
		return c.selectCmd(args[1:])
	case "exclude":
		return c.excludeCmd(args[1:])
	case "extract":
		return c.extractCmd(args[1:])
	case "keyof":
		return c.keyofCmd(args[1:])
	case "export":
		return c.exportCmd(args[1:])
	default:
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `structural CLI

Usage:
  structural extends -left L -right R [-defs D1,D2] [-max-depth N]
  structural select  -left L -right R -true T -false F [-format json|yaml|jsonschema]
  structural exclude -union U -excluded X [-format ...]
  structural extract -schema S -union U [-format ...]
  structural keyof   -schema S [-format ...]
  structural export  -schema S

Common flags:
  -lang en|ja  -log-level error|warn|info|debug  -strict

Files ending in .yaml/.yml are read as YAML, others as JSON.
extends exits 0 when assignable, 1 when not, 3 when ambiguous; errors exit 2.`)
}

type cli struct {
	stdout, stderr io.Writer
	color          bool

	defs     string
	maxDepth int
	format   string
	lang     string
	logLevel string
	strict   bool

	log         structural.Logger
	definitions []schema.Schema
}

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.StringVar(&c.defs, "defs", "", "comma-separated files whose schemas and $defs are registered as definitions")
	fs.IntVar(&c.maxDepth, "max-depth", structural.DefaultMaxDepth, "recursion bound for one comparison")
	fs.StringVar(&c.format, "format", "json", "output format: json, yaml or jsonschema")
	fs.StringVar(&c.lang, "lang", "en", "message language: en or ja")
	fs.StringVar(&c.logLevel, "log-level", "warn", "log level: error, warn, info or debug")
	fs.BoolVar(&c.strict, "strict", false, "reject keys that do not belong to a node's kind")
	return fs
}

// setup applies the common flags and loads -defs.
func (c *cli) setup() error {
	i18n.SetLanguage(c.lang)
	c.log = structural.NewLogger(structural.ParseLogLevel(c.logLevel), c.stderr)
	for _, path := range splitCSV(c.defs) {
		docs, d, err := schemadoc.LoadAllFile(path, c.loadOptions())
		c.warn(path, d)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		c.definitions = append(c.definitions, schemadoc.Definitions(docs...)...)
	}
	return nil
}

func (c *cli) loadOptions() schemadoc.Options {
	o := schemadoc.DefaultOptions()
	o.StrictKeys = c.strict
	o.Logger = c.log
	return o
}

// load reads one schema file and registers its $defs.
func (c *cli) load(flagName, path string) (schema.Schema, error) {
	if path == "" {
		return nil, fmt.Errorf("missing -%s", flagName)
	}
	doc, d, err := schemadoc.LoadFile(path, c.loadOptions())
	c.warn(path, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.definitions = append(c.definitions, doc.Definitions...)
	return doc.Root, nil
}

func (c *cli) warn(path string, d schemadoc.Diag) {
	if d == nil {
		return
	}
	for _, w := range d.Warnings() {
		c.log.Warnf("%s: %s", path, w)
	}
}

func (c *cli) comparator() *structural.Comparator {
	return structural.New(structural.Options{MaxDepth: c.maxDepth, Definitions: c.definitions, Logger: c.log})
}

func (c *cli) fail(err error) int {
	fmt.Fprintln(c.stderr, err)
	return exitUsage
}

func (c *cli) extendsCmd(args []string) int {
	fs := c.flags("extends")
	var left, right string
	fs.StringVar(&left, "left", "", "left schema file")
	fs.StringVar(&right, "right", "", "right schema file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if err := c.setup(); err != nil {
		return c.fail(err)
	}
	l, err := c.load("left", left)
	if err != nil {
		return c.fail(err)
	}
	r, err := c.load("right", right)
	if err != nil {
		return c.fail(err)
	}
	res, err := c.comparator().Extends(l, r)
	if err != nil {
		return c.fail(err)
	}
	fmt.Fprintf(c.stdout, "%s\t%s\n", c.paint(res), i18n.T("result_"+res.String(), nil))
	switch res {
	case structural.True:
		return exitOK
	case structural.Union:
		return exitUnion
	default:
		return exitFalse
	}
}

func (c *cli) selectCmd(args []string) int {
	fs := c.flags("select")
	var left, right, ifTrue, ifFalse string
	fs.StringVar(&left, "left", "", "left schema file")
	fs.StringVar(&right, "right", "", "right schema file")
	fs.StringVar(&ifTrue, "true", "", "schema file selected when left extends right")
	fs.StringVar(&ifFalse, "false", "", "schema file selected otherwise")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if err := c.setup(); err != nil {
		return c.fail(err)
	}
	var inputs [4]schema.Schema
	for i, f := range []struct{ name, path string }{{"left", left}, {"right", right}, {"true", ifTrue}, {"false", ifFalse}} {
		s, err := c.load(f.name, f.path)
		if err != nil {
			return c.fail(err)
		}
		inputs[i] = s
	}
	out, err := c.comparator().Conditional(inputs[0], inputs[1], inputs[2], inputs[3])
	if err != nil {
		return c.fail(err)
	}
	return c.emit(out)
}

func (c *cli) excludeCmd(args []string) int {
	fs := c.flags("exclude")
	var union, excluded string
	fs.StringVar(&union, "union", "", "union schema file")
	fs.StringVar(&excluded, "excluded", "", "schema file of the members to remove")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	return c.pair("union", union, "excluded", excluded, (*structural.Comparator).Exclude)
}

func (c *cli) extractCmd(args []string) int {
	fs := c.flags("extract")
	var s, union string
	fs.StringVar(&s, "schema", "", "schema file")
	fs.StringVar(&union, "union", "", "union schema file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	return c.pair("schema", s, "union", union, (*structural.Comparator).Extract)
}

func (c *cli) pair(an, a, bn, b string, op func(*structural.Comparator, schema.Schema, schema.Schema) (schema.Schema, error)) int {
	if err := c.setup(); err != nil {
		return c.fail(err)
	}
	sa, err := c.load(an, a)
	if err != nil {
		return c.fail(err)
	}
	sb, err := c.load(bn, b)
	if err != nil {
		return c.fail(err)
	}
	out, err := op(c.comparator(), sa, sb)
	if err != nil {
		return c.fail(err)
	}
	return c.emit(out)
}

func (c *cli) keyofCmd(args []string) int {
	fs := c.flags("keyof")
	var in string
	fs.StringVar(&in, "schema", "", "schema file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if err := c.setup(); err != nil {
		return c.fail(err)
	}
	s, err := c.load("schema", in)
	if err != nil {
		return c.fail(err)
	}
	out, err := c.comparator().KeyOf(s)
	if err != nil {
		return c.fail(err)
	}
	return c.emit(out)
}

func (c *cli) exportCmd(args []string) int {
	fs := c.flags("export")
	var in string
	fs.StringVar(&in, "schema", "", "schema file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if err := c.setup(); err != nil {
		return c.fail(err)
	}
	s, err := c.load("schema", in)
	if err != nil {
		return c.fail(err)
	}
	c.format = "jsonschema"
	return c.emit(s)
}

// emit writes a result schema in the selected format.
func (c *cli) emit(s schema.Schema) int {
	var (
		data []byte
		err  error
	)
	switch c.format {
	case "json":
		data, err = schemadoc.MarshalSchema(s, schemadoc.FormatJSON)
	case "yaml":
		data, err = schemadoc.MarshalSchema(s, schemadoc.FormatYAML)
	case "jsonschema":
		var js *jsonschema.Schema
		if js, err = jsonschema.Export(s, c.definitions...); err == nil {
			data, err = jsonschema.Marshal(js)
		}
	default:
		err = errors.New("unknown -format " + c.format)
	}
	if err != nil {
		return c.fail(err)
	}
	data = append(data, '\n')
	if _, err := c.stdout.Write(data); err != nil {
		return c.fail(err)
	}
	return exitOK
}

// paint colours a verdict when stdout is a terminal.
func (c *cli) paint(r structural.Result) string {
	if !c.color {
		return r.String()
	}
	code := "31"
	switch r {
	case structural.True:
		code = "32"
	case structural.Union:
		code = "33"
	}
	return "\x1b[" + code + "m" + r.String() + "\x1b[0m"
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
