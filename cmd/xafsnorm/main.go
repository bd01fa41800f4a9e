// Command xafsnorm normalizes an XAFS absorption spectrum.
//
// Usage:
//
//	xafsnorm [flags] [file]
//
// The input is whitespace-separated two-column text (energy in eV, mu),
// read from the given file or from stdin. Lines starting with '#' are
// skipped.
//
// Examples:
//
//	xafsnorm spectrum.dat
//	xafsnorm -e0 7112 -nnorm 2 spectrum.dat
//	xafsnorm -v spectrum.dat > normalized.dat
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-xafs/xafs/preedge"
)

func main() {
	e0 := flag.Float64("e0", math.NaN(), "edge energy in eV (default: derived from the derivative)")
	step := flag.Float64("step", math.NaN(), "edge step (default: derived from the background fits)")
	nnorm := flag.Int("nnorm", 3, "post-edge polynomial degree (1..5)")
	nvict := flag.Float64("nvict", 0, "victoreen energy exponent for the fits")
	pre1 := flag.Float64("pre1", math.NaN(), "pre-edge window low bound relative to e0 (default: data minimum)")
	pre2 := flag.Float64("pre2", math.NaN(), "pre-edge window high bound relative to e0 (default: -50)")
	norm1 := flag.Float64("norm1", math.NaN(), "post-edge window low bound relative to e0 (default: 100)")
	norm2 := flag.Float64("norm2", math.NaN(), "post-edge window high bound relative to e0 (default: data maximum)")
	verbose := flag.Bool("v", false, "print per-sample normalized output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xafsnorm [flags] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Performs XAFS pre-edge subtraction and normalization on two-column\n")
		fmt.Fprintf(os.Stderr, "energy/mu data read from file or stdin.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "xafsnorm: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	energy, mu, err := readColumns(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xafsnorm: %v\n", err)
		os.Exit(1)
	}

	opts := []preedge.Option{
		preedge.WithPolyDegree(*nnorm),
		preedge.WithVictoreen(*nvict),
		preedge.WithPreRange(*pre1, *pre2),
		preedge.WithNormRange(*norm1, *norm2),
	}

	if !math.IsNaN(*e0) {
		opts = append(opts, preedge.WithE0(*e0))
	}

	if !math.IsNaN(*step) {
		opts = append(opts, preedge.WithStep(*step))
	}

	res, err := preedge.Normalize(energy, mu, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xafsnorm: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		printSamples(energy, mu, res)
		return
	}

	printSummary(res)
}

// readColumns parses whitespace-separated two-column energy/mu data,
// skipping blank lines and '#' comments.
func readColumns(r io.Reader) ([]float64, []float64, error) {
	var energy, mu []float64

	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("line %d: need two columns, got %d", lineNo, len(fields))
		}

		e, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: bad energy %q", lineNo, fields[0])
		}

		m, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: bad mu %q", lineNo, fields[1])
		}

		energy = append(energy, e)
		mu = append(mu, m)
	}

	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	return energy, mu, nil
}

func printSummary(res preedge.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "e0\t%.4f eV\n", res.E0)
	fmt.Fprintf(w, "edge step\t%.6g\n", res.EdgeStep)
	fmt.Fprintf(w, "pre-edge window\t[%.1f, %.1f] eV rel. e0\n", res.Pre1, res.Pre2)
	fmt.Fprintf(w, "post-edge window\t[%.1f, %.1f] eV rel. e0\n", res.Norm1, res.Norm2)
	fmt.Fprintf(w, "post-edge degree\t%d\n", res.PolyDegree)
	fmt.Fprintf(w, "pre-edge coefs\t%v\n", res.PreCoefs)
	fmt.Fprintf(w, "post-edge coefs\t%v\n", res.NormCoefs)

	w.Flush()
}

func printSamples(energy, mu []float64, res preedge.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(w, "# energy\tmu\tnorm\tpre_edge\tpost_edge\t")
	for i := range energy {
		fmt.Fprintf(w, "%.4f\t%.6g\t%.6g\t%.6g\t%.6g\t\n",
			energy[i], mu[i], res.Norm[i], res.PreEdge[i], res.PostEdge[i])
	}

	w.Flush()
}
