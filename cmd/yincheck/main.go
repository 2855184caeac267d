// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command yincheck parses YANG or YIN modules, reports any compilation
// errors, and optionally prints the resulting schema tree. It is a thin,
// scriptable front end over Context/Modules, not a library in its own
// right.
//
// Usage: yincheck [--path DIR,...] [--yin] [--tree] FILE [FILE ...]
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openconfig/yin-yang/pkg/indent"
	"github.com/openconfig/yin-yang/pkg/yang"
)

var (
	searchPaths []string
	yinInput    bool
	printTree   bool
	cfgFile     string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yincheck FILE [FILE ...]",
		Short: "Compile YANG/YIN modules and report errors",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}

	cmd.Flags().StringSliceVar(&searchPaths, "path", nil, "comma separated list of directories to add to the module search path")
	cmd.Flags().BoolVar(&yinInput, "yin", false, "parse input files as YIN (XML) rather than native YANG text")
	cmd.Flags().BoolVar(&printTree, "tree", false, "print the compiled schema tree for every top-level module found")
	cmd.Flags().StringVar(&cfgFile, "config_file", "", "path to a config file providing any of the above flags")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config: %w", err)
			}
		}
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		viper.AutomaticEnv()
		return nil
	}

	return cmd
}

func runCheck(cmd *cobra.Command, files []string) error {
	searchPaths = viper.GetStringSlice("path")
	yinInput = viper.GetBool("yin")
	printTree = viper.GetBool("tree")
	opts := yang.Options{}
	ctx := yang.ContextNew(searchPaths, opts)

	for _, name := range files {
		if yinInput {
			data, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			mod, err := ctx.ParseYinMemory(data, name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			glog.V(1).Infof("parsed YIN module %s from %s", mod.Name, name)
			continue
		}
		if err := ctx.Read(name); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		glog.V(1).Infof("parsed %s", name)
	}

	if errs := ctx.Process(); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("%d error(s) compiling module set", len(errs))
	}

	if !printTree {
		return nil
	}

	names := make([]string, 0, len(ctx.Modules))
	for n := range ctx.Modules {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		e := yang.ToEntry(ctx.Modules[n])
		fmt.Printf("module: %s\n", e.Name)
		printEntry(os.Stdout, e, "  ")
	}
	return nil
}

// printEntry writes a compact, indented listing of e and its descendants.
// It is not Entry.Print's verbose form (reference comments, deviation
// markers); it is a quick structural check of what ToEntry produced.
func printEntry(w *os.File, e *yang.Entry, prefix string) {
	names := make([]string, 0, len(e.Dir))
	for n := range e.Dir {
		names = append(names, n)
	}
	sort.Strings(names)
	iw := indent.NewWriter(w, prefix)
	for _, n := range names {
		fmt.Fprintf(iw, "%s\n", n)
		printEntry(w, e.Dir[n], prefix+"  ")
	}
}

func init() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}
