// Command aheuic transpiles an Aheui source file into freestanding C,
// printed to stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/kiwiyou-go/aheuic/aheui"
)

func main() {
	root := &cobra.Command{
		Use:   "aheuic <input>",
		Short: "Transpile an Aheui program into C",
		Long:  "aheuic reads an Aheui source file, or stdin when input is \"-\", and writes the equivalent freestanding C program to stdout.",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	if err := root.Execute(); err != nil {
		glog.Fatalln(err)
	}
}

func run(cmd *cobra.Command, args []string) (err error) {
	content, err := readInput(args[0])
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("aheuic: %v", r)
		}
	}()

	fmt.Print(aheui.Transpile(content))
	return nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("could not read from stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read from input file: %w", err)
	}
	return string(b), nil
}
