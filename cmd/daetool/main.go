// daetool is a CLI utility for converting COLLADA models into
// renderer-ready mesh formats.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gouthamsk98/go-dae/internal/assets"
	"github.com/gouthamsk98/go-dae/internal/config"
	"github.com/gouthamsk98/go-dae/internal/logger"
	"github.com/gouthamsk98/go-dae/pkg/collada"
	"github.com/gouthamsk98/go-dae/pkg/convert"
	"github.com/gouthamsk98/go-dae/pkg/export"
	"github.com/gouthamsk98/go-dae/pkg/mesh"
)

func main() {
	// Global flags come before the subcommand
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "convert", "c":
		cmdConvert(cfg, rest)
	case "info":
		cmdInfo(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`daetool - COLLADA model conversion utility

Usage:
  daetool [options] <command> [command options]

Commands:
  convert <file.dae> [file.dae ...]  Convert models to the configured format
  info <file.dae>                    Show document and mesh information

Options:
  -config <path>   Use a specific config file
  -debug           Enable debug logging
  -log <path>      Write a JSON log to this file
  -format <name>   Output format: gltf, glb or obj
  -wireframe       Decode meshes as wireframe line lists
  -outdir <dir>    Directory for converted files

Examples:
  daetool convert chair.dae
  daetool -format obj convert chair.dae table.dae
  daetool -wireframe -outdir out convert chair.dae
  daetool convert -o chair.glb chair.dae
  daetool info chair.dae`)
}

func newManager(cfg *config.Config) *assets.Manager {
	mgr := assets.NewManager()
	for _, root := range cfg.Assets.SearchPaths {
		if err := mgr.AddRoot(root); err != nil {
			logger.Warn("skipping search root", zap.Error(err))
		}
	}
	return mgr
}

func cmdConvert(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	out := fs.String("o", "", "Output path (single input only)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: daetool convert [-o output] <file.dae> [file.dae ...]")
		os.Exit(1)
	}
	if *out != "" && fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "-o cannot be combined with multiple inputs")
		os.Exit(1)
	}

	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	topo, err := mesh.ParseTopology(cfg.Output.Topology)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// An explicit output path with a known extension implies its format.
	if *out != "" {
		if f, err := export.ParseFormat(strings.TrimPrefix(filepath.Ext(*out), ".")); err == nil {
			format = f
		}
	}

	mgr := newManager(cfg)

	failed := 0
	for _, input := range fs.Args() {
		outPath := *out
		if outPath == "" {
			outPath = outputPath(cfg.Output.Dir, input, format)
		}

		if err := convertOne(mgr, input, outPath, topo, format); err != nil {
			logger.Error("conversion failed", zap.String("input", input), zap.Error(err))
			failed++
			continue
		}
		fmt.Printf("Converted: %s -> %s\n", input, outPath)
	}

	hits, misses := mgr.CacheStats()
	logger.Debug("cache stats", zap.Int("hits", hits), zap.Int("misses", misses))

	if failed > 0 {
		os.Exit(1)
	}
}

func convertOne(mgr *assets.Manager, input, output string, topo mesh.Topology, format export.Format) error {
	m, err := mgr.LoadMesh(input, topo)
	if err != nil {
		return err
	}

	logger.Debug("decoded mesh",
		zap.String("input", input),
		zap.String("topology", m.Topology.String()),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("indices", len(m.Indices)),
		zap.Bool("tangents", m.Tangents != nil),
	)

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	return export.Save(m, meshName(input), output, format)
}

// outputPath picks the destination for input: the configured output
// directory when set, otherwise next to the input file.
func outputPath(dir, input string, format export.Format) string {
	base := meshName(input) + format.Ext()
	if dir == "" {
		return filepath.Join(filepath.Dir(input), base)
	}
	return filepath.Join(dir, base)
}

func meshName(input string) string {
	return strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
}

func cmdInfo(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: daetool info <file.dae>")
		os.Exit(1)
	}

	mgr := newManager(cfg)
	data, err := mgr.Read(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	doc, err := collada.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Document:      %s\n", fs.Arg(0))
	fmt.Printf("Geometries:    %d\n", len(doc.Geometries))
	fmt.Printf("Visual scenes: %d\n", len(doc.VisualScenes))
	if scene := doc.DefaultVisualScene(); scene != nil {
		fmt.Printf("Default scene: %s\n", scene.ID)
	}

	for _, g := range doc.Geometries {
		fmt.Printf("\nGeometry %s", g.ID)
		if g.Name != "" && g.Name != g.ID {
			fmt.Printf(" (%s)", g.Name)
		}
		fmt.Println()

		for _, src := range g.Mesh.Sources {
			fmt.Printf("  source %-24s %-8s stride %d, %d elements\n",
				src.ID, src.Role, src.Stride, src.ElementCount())
		}
		for _, tri := range g.Mesh.Triangles {
			semantics := make([]string, 0, len(tri.Inputs))
			for _, in := range tri.Inputs {
				semantics = append(semantics, in.Semantic)
			}
			fmt.Printf("  triangles count %d, inputs [%s], %d index entries\n",
				tri.Count, strings.Join(semantics, " "), len(tri.P))
		}
	}

	m, err := convert.ConvertDocument(doc, convert.Options{})
	if err != nil {
		fmt.Printf("\nDecode: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Decoded:   %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	fmt.Printf("Bounds:    min (%g, %g, %g)\n", m.Bounds.Min[0], m.Bounds.Min[1], m.Bounds.Min[2])
	fmt.Printf("           max (%g, %g, %g)\n", m.Bounds.Max[0], m.Bounds.Max[1], m.Bounds.Max[2])
	if m.Tangents != nil {
		fmt.Println("Tangents:  generated")
	}
}
