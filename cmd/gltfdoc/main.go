package main

import (
	"flag"
	"fmt"
	"os"

	gltfdoc "github.com/lumel/gltfdoc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "roundtrip":
		roundtripCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "gltfdoc CLI\n\nUsage:\n  gltfdoc validate <file.gltf|file.glb>\n  gltfdoc roundtrip [-emit-defaults] <file.gltf|file.glb>\n\nNotes:\n  - validate exits 1 when any error-severity finding is reported.\n  - roundtrip writes the re-encoded JSON document to stdout.")
}

func loadDocument(path string) (*gltfdoc.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if gltfdoc.IsGLB(data) {
		glb, err := gltfdoc.ParseGLB(data)
		if err != nil {
			return nil, err
		}
		return glb.Document, nil
	}
	return gltfdoc.Unmarshal(data)
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	doc, err := loadDocument(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode failed: %v\n", err)
		os.Exit(1)
	}
	findings := gltfdoc.Validate(doc)
	for _, f := range findings {
		fmt.Fprintf(os.Stderr, "%s: %s at %s: %s\n", f.Severity, f.Code, f.Path, f.Message)
	}
	if findings.HasErrors() {
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "ok: %d findings, none fatal\n", len(findings))
}

func roundtripCmd(args []string) {
	fs := flag.NewFlagSet("roundtrip", flag.ExitOnError)
	var emitDefaults bool
	fs.BoolVar(&emitDefaults, "emit-defaults", false, "re-emit optional fields equal to their format default")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	doc, err := loadDocument(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode failed: %v\n", err)
		os.Exit(1)
	}
	out, err := gltfdoc.Marshal(doc, gltfdoc.EncodeOptions{EmitDefaults: emitDefaults})
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode failed: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
	fmt.Println()
}
