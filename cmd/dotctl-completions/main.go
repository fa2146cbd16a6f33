// Command dotctl-completions writes shell completion scripts for dotctl.
//
// With a shell name it prints that shell's script to stdout. With --dir it
// writes one script per shell into the directory, named the way each shell
// looks completions up, which is what release packaging ships.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotctl/internal/cli"
	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/spf13/cobra"
)

type completion struct {
	file     string
	generate func(root *cobra.Command, w io.Writer) error
}

var shells = []string{"bash", "zsh", "fish", "powershell"}

var completions = map[string]completion{
	"bash": {"dotctl", func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	}},
	"zsh": {"_dotctl", func(root *cobra.Command, w io.Writer) error {
		return root.GenZshCompletion(w)
	}},
	"fish": {"dotctl.fish", func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	}},
	"powershell": {"dotctl.ps1", func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	}},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <%s> | --dir <directory>\n", os.Args[0], strings.Join(shells, "|"))
		os.Exit(1)
	}

	if os.Args[1] == "--dir" {
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "--dir needs a directory")
			os.Exit(1)
		}
		written, err := writeAll(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, path := range written {
			fmt.Println(path)
		}
		return
	}

	if err := generate(os.Args[1], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// generate writes the completion script of shell to w
func generate(shell string, w io.Writer) error {
	c, ok := completions[shell]
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "unknown shell %q, supported: %s", shell, strings.Join(shells, ", ")).
			WithDetail("shell", shell)
	}
	if err := c.generate(cli.NewRootCmd(), w); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "cannot generate %s completion", shell)
	}
	return nil
}

// writeAll writes every shell's script into dir and returns the paths
func writeAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot create %s", dir)
	}

	written := make([]string, 0, len(shells))
	for _, shell := range shells {
		path := filepath.Join(dir, completions[shell].file)
		f, err := os.Create(path)
		if err != nil {
			return written, errors.Wrapf(err, errors.ErrInternal, "cannot create %s", path)
		}
		err = generate(shell, f)
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, errors.ErrInternal, "cannot write %s", path)
		}
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
