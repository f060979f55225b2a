// Command pretzyl evaluates Pretzyl programs from the command line.
//
//	pretzyl -env site.yaml "'static' 'css' ('site-' key '.html' + squash) pathjoin squash"
//
// Each argument is a complete program; programs are evaluated concurrently,
// one interpreter per program over the shared environment, and results print
// in argument order.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"

	"github.com/pretzyl-lang/pretzyl"
)

func main() {
	var (
		envFile   string
		macroFile string
		opPath    string
		count     int
		all       bool
		raw       bool
		trace     bool
	)
	flag.StringVar(&envFile, "env", "", "load the evaluation environment from a YAML file")
	flag.StringVar(&macroFile, "macros", "", "load a macro table from a YAML file")
	flag.StringVar(&opPath, "oppath", "", "environment sub-path holding host operators")
	flag.IntVar(&count, "count", 1, "number of result values to return per program")
	flag.BoolVar(&all, "all", false, "return all remaining result values")
	flag.BoolVar(&raw, "raw", false, "do not resolve returned references")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: pretzyl [flags] program ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(envFile, macroFile, opPath, count, all, raw, trace, flag.Args()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "pretzyl: %v\n", err)
		os.Exit(1)
	}
}

func run(envFile, macroFile, opPath string, count int, all, raw, trace bool, programs []string) error {
	env := pretzyl.MapEnv{}
	if envFile != "" {
		if err := loadYAML(envFile, &env); err != nil {
			return err
		}
	}

	var opts []pretzyl.Option
	if macroFile != "" {
		macros := make(map[string]string)
		if err := loadYAML(macroFile, &macros); err != nil {
			return err
		}
		opts = append(opts, pretzyl.WithMacros(macros))
	}
	if opPath != "" {
		opts = append(opts, pretzyl.WithOperatorPath(opPath))
	}
	if trace {
		opts = append(opts, pretzyl.WithLogf(log.Printf))
	}
	if all {
		count = pretzyl.All
	}

	// one interpreter per program; only the environment is shared
	results := make([][]interface{}, len(programs))
	var group errgroup.Group
	for i, program := range programs {
		i, program := i, program
		group.Go(func() error {
			p := pretzyl.New(env, opts...)
			items, err := p.EvalN(program, count, !raw)
			if err != nil {
				return fmt.Errorf("%q: %w", program, err)
			}
			results[i] = items
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, items := range results {
		for _, item := range items {
			fmt.Println(item)
		}
	}
	return nil
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if env, ok := out.(*pretzyl.MapEnv); ok {
		for name, v := range *env {
			(*env)[name] = normalize(v)
		}
	}
	return nil
}

// normalize rewrites yaml.v2's map[interface{}]interface{} trees into the
// string-keyed maps the interpreter traffics in.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, v := range t {
			out[fmt.Sprint(k)] = normalize(v)
		}
		return out
	case []interface{}:
		for i, v := range t {
			t[i] = normalize(v)
		}
	}
	return v
}
