// Package main provides the born scalar autodiff CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/scalar/autodiff"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("born scalar %s\n", version)
	case "demo":
		if err := runDemo(); err != nil {
			log.Fatalf("demo: %v", err)
		}
	case "fit":
		if err := runFit(os.Args[2:]); err != nil {
			log.Fatalf("fit: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("born scalar - reverse-mode autodiff over scalar values")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate a few small expressions")
	fmt.Println("  fit        Fit y = w*x + b with gradient descent")
}

func runDemo() error {
	tape := autodiff.NewTape()
	a := tape.Leaf(3)
	b := tape.Leaf(4)
	c := a.Add(b)
	if err := c.Backward(); err != nil {
		return err
	}
	fmt.Printf("c = a + b   c=%v  dc/da=%v  dc/db=%v\n", c.Data(), a.Grad(), b.Grad())

	x := tape.Leaf(5)
	y := x.Mul(x)
	if err := y.Backward(); err != nil {
		return err
	}
	fmt.Printf("y = x * x   y=%v  dy/dx=%v\n", y.Data(), x.Grad())

	p, err := tape.Leaf(-2).Pow(tape.Leaf(3))
	if err != nil {
		return err
	}
	fmt.Printf("p = -2 ** 3 p=%v  backward: %v\n", p.Data(), p.Backward())
	return nil
}

func runFit(args []string) error {
	fs := flag.NewFlagSet("fit", flag.ContinueOnError)
	optimizer := fs.String("optimizer", "sgd", "Optimizer: sgd or adam")
	lr := fs.Float64("lr", 0.05, "Learning rate")
	momentum := fs.Float64("momentum", 0.9, "Momentum factor for sgd")
	steps := fs.Int("steps", 500, "Number of optimization steps")
	logEvery := fs.Int("log-every", 50, "Log loss every N steps (0 = never)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := fitConfig{
		Optimizer: *optimizer,
		LR:        *lr,
		Momentum:  *momentum,
		Steps:     *steps,
		LogEvery:  *logEvery,
	}
	res, err := fitLine(cfg, sampleData(), log.Default())
	if err != nil {
		return err
	}
	fmt.Printf("w=%.6f b=%.6f loss=%.3g\n", res.W, res.B, res.Loss)
	return nil
}
