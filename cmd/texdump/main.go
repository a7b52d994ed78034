// texdump writes the generated textures and inspects brain models without
// opening a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/neurosummit/internal/assets"
	"github.com/Faultbox/neurosummit/internal/engine/debug"
	"github.com/Faultbox/neurosummit/internal/procgen"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list", "ls":
		cmdList()
	case "dump":
		cmdDump(args)
	case "model":
		cmdModel(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`texdump - NeuroSummit asset utility

Usage:
  texdump <command> [options]

Commands:
  list                               List generated texture names
  dump [-out dir] [-format png|bmp] [-seed n] [name...]
                                     Write generated textures to disk
  model <file.glb>                   Show the meshes a brain model yields

Examples:
  texdump dump -out textures
  texdump dump -format bmp -seed 42 tissue star
  texdump model assets/brain.glb`)
}

func cmdList() {
	for _, name := range procgen.Names() {
		fmt.Println(name)
	}
}

func cmdDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	out := fs.String("out", "textures", "Output directory")
	format := fs.String("format", "png", "Image format (png or bmp)")
	seed := fs.Int64("seed", 1, "Procedural seed (0 = random)")
	fs.Parse(args)

	names := fs.Args()
	if len(names) == 0 {
		names = procgen.Names()
	}

	cache := procgen.NewTextureCache(procgen.NewRand(*seed))
	shots := debug.NewScreenshots(*out, "", strings.ToLower(*format))

	failed := 0
	for _, name := range names {
		tex, err := cache.Get(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed++
			continue
		}
		path, err := shots.SaveAs(name, tex.Image)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
			failed++
			continue
		}
		b := tex.Image.Bounds()
		fmt.Printf("%-12s %4dx%-4d -> %s\n", name, b.Dx(), b.Dy(), path)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func cmdModel(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: texdump model <file.glb>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	meshes, err := assets.DecodeGLB(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Model: %s\n", args[0])
	fmt.Printf("Meshes: %d\n", len(meshes))
	var vertices, indices int
	for i, m := range meshes {
		fmt.Printf("  [%d] %7d vertices %7d indices\n", i, m.VertexCount(), len(m.Indices))
		vertices += m.VertexCount()
		indices += len(m.Indices)
	}
	fmt.Printf("Total: %d vertices, %d triangles\n", vertices, indices/3)
}
