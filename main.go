package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/loaders"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType string
	sceneFile string
	width     int
	height    int
	samples   int
	depth     int
	seed      uint64
	workers   int
	noJitter  bool
	output    string
	quiet     bool
	help      bool
}

func registerFlags(fs *flag.FlagSet, opts *options) {
	defaults := renderer.DefaultRenderConfig()
	fs.StringVar(&opts.sceneType, "scene", "default", "Built-in scene: 'default' or 'glass'")
	fs.StringVar(&opts.sceneFile, "scene-file", "", "Load the scene from a JSON description instead")
	fs.IntVar(&opts.width, "width", defaults.ImageWidth, "Image width in pixels")
	fs.IntVar(&opts.height, "height", defaults.ImageHeight, "Image height in pixels")
	fs.IntVar(&opts.samples, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&opts.depth, "depth", defaults.MaxDepth, "Maximum bounce depth")
	fs.Uint64Var(&opts.seed, "seed", defaults.RNGSeed, "Random seed")
	fs.IntVar(&opts.workers, "workers", defaults.NumWorkers, "Worker goroutines (0 = CPU count, 1 = sequential)")
	fs.BoolVar(&opts.noJitter, "no-jitter", false, "Sample pixel centers only")
	fs.StringVar(&opts.output, "output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&opts.quiet, "quiet", false, "Suppress progress and log output")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
}

func newFlagSet(output io.Writer, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("sphere-tracer", flag.ContinueOnError)
	fs.SetOutput(output)
	registerFlags(fs, opts)
	return fs
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := newFlagSet(output, &opts)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Sphere Tracer")
	fmt.Fprintln(w, "Usage: sphere-tracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	var unused options
	newFlagSet(w, &unused).PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>.png unless -output is set")
}

// createScene loads sceneFile when given, otherwise the named built-in scene
func createScene(sceneType, sceneFile string) (*scene.Scene, error) {
	if sceneFile != "" {
		return loaders.LoadScene(sceneFile)
	}
	return scene.NewByName(sceneType)
}

// sceneLabel names the output directory for a render
func sceneLabel(opts options) string {
	if opts.sceneFile != "" {
		base := filepath.Base(opts.sceneFile)
		return base[:len(base)-len(filepath.Ext(base))]
	}
	return opts.sceneType
}

func buildConfig(opts options) renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.ImageWidth = opts.width
	config.ImageHeight = opts.height
	config.SamplesPerPixel = opts.samples
	config.MaxDepth = opts.depth
	config.RNGSeed = opts.seed
	config.Jitter = !opts.noJitter
	config.NumWorkers = opts.workers
	if config.NumWorkers == 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	return config
}

func outputPath(opts options, now time.Time) string {
	if opts.output != "" {
		return opts.output
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneLabel(opts), fmt.Sprintf("render_%s.png", timestamp))
}

func savePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}

// startProgress prints the completed share of samples until stop is called
func startProgress(w io.Writer, total int64) (renderer.ProgressFunc, func()) {
	var done atomic.Int64
	ticker := time.NewTicker(200 * time.Millisecond)
	quit := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		for {
			select {
			case <-ticker.C:
				fmt.Fprintf(w, "\rProgress %d%%", done.Load()*100/total)
			case <-quit:
				ticker.Stop()
				fmt.Fprintf(w, "\rProgress %d%%\n", done.Load()*100/total)
				return
			}
		}
	}()

	progress := func() { done.Add(1) }
	stop := func() {
		close(quit)
		<-finished
	}
	return progress, stop
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	var logger core.Logger = renderer.NewDefaultLogger()
	if opts.quiet {
		logger = renderer.NewDiscardLogger()
	}

	selectedScene, err := createScene(opts.sceneType, opts.sceneFile)
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, buildConfig(opts), logger)
	if err != nil {
		return err
	}
	config := raytracer.Config()
	logger.Printf("Camera at %v, seed %d, jitter %t\n", raytracer.Camera().Center(), config.RNGSeed, config.Jitter)

	var progress renderer.ProgressFunc
	stop := func() {}
	if !opts.quiet {
		progress, stop = startProgress(stdout, int64(config.TotalSamples()))
	}

	img, stats, err := raytracer.RenderImage(ctx, progress)
	stop()
	if err != nil {
		return err
	}

	filename := outputPath(opts, time.Now())
	if err := savePNG(filename, img); err != nil {
		return err
	}

	logger.Printf("Traced %d samples over %d pixels with %d worker(s)\n", stats.TotalSamples, stats.TotalPixels, stats.Workers)
	logger.Printf("Render saved as %s\n", filename)
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.help {
		printHelp(os.Stdout)
		return
	}

	if !opts.quiet {
		fmt.Println("Starting Sphere Tracer...")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}
