package main

import (
	"bytes"
	"io"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
	minxml "github.com/tdewolff/minify/v2/xml"
	"github.com/yuin/goldmark"

	"github.com/btr-supply/asciimath2ml"
	mathmd "github.com/btr-supply/asciimath2ml/markdown"
)

type Convert struct {
	Inline   bool   `short:"i" desc:"Render with inline display mode"`
	Minify   bool   `short:"m" desc:"Minify the output"`
	Markdown bool   `desc:"Treat input as markdown with $...$ math spans"`
	File     string `short:"f" default:"" desc:"Read notation from file, - for stdin"`
	Output   string `short:"o" default:"" desc:"Output file (default stdout)"`
	Input    string `index:"0" desc:"Notation text"`
}

func main() {
	root := argp.NewCmd(&Convert{}, "ASCIIMath to MathML converter")
	root.Parse()
}

func (cmd *Convert) Run() error {
	input := cmd.Input
	if cmd.File == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		input = string(b)
	} else if cmd.File != "" {
		b, err := os.ReadFile(cmd.File)
		if err != nil {
			return err
		}
		input = string(b)
	} else if input == "" {
		return argp.ShowUsage
	}

	var out string
	if cmd.Markdown {
		buf := &bytes.Buffer{}
		md := goldmark.New(goldmark.WithExtensions(mathmd.Math))
		if err := md.Convert([]byte(input), buf); err != nil {
			return err
		}
		out = buf.String()
	} else {
		out = asciimath.Convert(input, cmd.Inline)
	}

	if cmd.Minify {
		m := minify.New()
		m.AddFunc("text/xml", minxml.Minify)
		m.AddFunc("text/html", minhtml.Minify)
		mediatype := "text/xml"
		if cmd.Markdown {
			mediatype = "text/html"
		}
		var err error
		if out, err = m.String(mediatype, out); err != nil {
			return err
		}
	}

	w := io.Writer(os.Stdout)
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if _, err := io.WriteString(w, out); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
