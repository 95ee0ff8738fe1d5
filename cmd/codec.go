package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/appsweep/appsweep/internal/codec"
)

// The encode/decode pair lets a resolved file list cross a process
// boundary as a single argument: a preview step encodes, a privileged
// execution step decodes.

var encodeCmd = &cobra.Command{
	Use:   "encode [path...]",
	Short: "Encode a file list as a transport token",
	Long: `Encode absolute paths as a single base64 token safe to pass as one
command-line argument or environment value. Paths are read from the
arguments, or from stdin (one per line) when no arguments are given.`,
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Decode a transport token back into a file list",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

var decodeContext string

func init() {
	decodeCmd.Flags().StringVar(&decodeContext, "context", "transport token", "Label used in validation errors")
}

func runEncode(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				paths = append(paths, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			return fmt.Errorf("refusing to encode non-absolute path %q", p)
		}
	}
	fmt.Println(codec.Encode(paths))
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	paths, err := codec.Decode(args[0], decodeContext)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
