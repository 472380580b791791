// Package main provides the scalar autodiff CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/born-ml/scalar/autodiff"
	"github.com/born-ml/scalar/graph"
	"github.com/born-ml/scalar/nn"
	"github.com/born-ml/scalar/train"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("scalar %s\n", version)
	case "xor":
		runXOR(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("scalar - reverse-mode automatic differentiation on scalars")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train a [2 3 1] tanh MLP on XOR")
}

type xorOptions struct {
	lr       float64
	iters    int
	seed     uint64
	every    int
	hidden   int
	strategy string
	save     string
	load     string
}

func runXOR(args []string) {
	fs := flag.NewFlagSet("xor", flag.ExitOnError)
	opts := xorOptions{}
	fs.StringVar(&opts.strategy, "strategy", "arena", "Memory strategy: arena or graph")
	fs.Float64Var(&opts.lr, "lr", 0.15, "Learning rate")
	fs.IntVar(&opts.iters, "iters", 2000, "Number of training iterations")
	fs.Uint64Var(&opts.seed, "seed", 2, "PCG seed (second word is fixed to 1024)")
	fs.IntVar(&opts.hidden, "hidden", 3, "Hidden layer width")
	fs.IntVar(&opts.every, "every", 200, "Print the loss every N iterations (0 = never)")
	fs.StringVar(&opts.load, "load", "", "Load initial weights from this file")
	fs.StringVar(&opts.save, "save", "", "Save trained weights to this file")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	rng := rand.New(rand.NewPCG(opts.seed, 1024))
	sizes := []int{2, opts.hidden, 1}

	switch opts.strategy {
	case "arena":
		arena := autodiff.New[float64]()
		mlp := nn.NewMLP[float64, autodiff.Handle[float64]](arena, sizes, nn.Tanh[float64, autodiff.Handle[float64]](), rng)
		trainXOR(arena, mlp, opts)
		fmt.Printf("Arena: %d permanent, %d temporary nodes\n", arena.NumPermanent(), arena.NumTemporary())
	case "graph":
		g := graph.New[float64]()
		mlp := nn.NewMLP[float64, *graph.Node[float64]](g, sizes, nn.Tanh[float64, *graph.Node[float64]](), rng)
		trainXOR(g, mlp, opts)
		fmt.Printf("Graph: %d permanent, %d live temporary nodes\n", g.NumPermanent(), g.NumLive())
	default:
		log.Fatalf("Unknown strategy %q (want arena or graph)", opts.strategy)
	}
}

func trainXOR[V nn.Scalar[float64, V]](store nn.Store[float64, V], mlp *nn.MLP[float64, V], opts xorOptions) {
	fmt.Printf("Model: %s, %d parameters\n", mlp, mlp.NumParameters())
	if opts.load != "" {
		header, err := nn.LoadModule[float64, V](opts.load, mlp)
		if err != nil {
			log.Fatalf("Failed to load weights: %v", err)
		}
		fmt.Printf("Loaded %s weights from %s (created %s)\n", header.ModelType, opts.load, header.CreatedAt.Format(time.RFC3339))
	}
	fmt.Printf("Training: strategy=%s lr=%.4f iters=%d\n", opts.strategy, opts.lr, opts.iters)

	trainer, err := train.New(store, mlp, train.XOR[float64](), train.Config[float64]{
		LR:         opts.lr,
		Iterations: opts.iters,
		OnIteration: func(iter int, loss float64) {
			if opts.every > 0 && iter%opts.every == 0 {
				fmt.Printf("iter %5d  loss=%.6f\n", iter, loss)
			}
		},
	})
	if err != nil {
		log.Fatalf("Failed to create trainer: %v", err)
	}

	final := trainer.Run()
	fmt.Printf("Final loss: %.6f\n", final)

	data := train.XOR[float64]()
	for i, out := range trainer.Predict() {
		fmt.Printf("  %v -> %.4f (want %v)\n", data[i].Input, out[0], data[i].Target[0])
	}
	fmt.Printf("Max error: %.4f\n", trainer.MaxError())

	if opts.save != "" {
		metadata := map[string]string{
			"lr":    strconv.FormatFloat(opts.lr, 'g', -1, 64),
			"iters": strconv.Itoa(opts.iters),
			"loss":  strconv.FormatFloat(final, 'g', -1, 64),
		}
		if err := nn.SaveModule[float64, V](opts.save, mlp, metadata); err != nil {
			log.Fatalf("Failed to save weights: %v", err)
		}
		fmt.Printf("Saved weights to %s\n", opts.save)
	}
}
