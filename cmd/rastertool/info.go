package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rastertool/internal/codec"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show dimensions and format of an image",
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringP("input", "i", "", "Input image file")
	infoCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")

	info, err := codec.ReadInfo(inputPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:      %s\n", inputPath)
	fmt.Fprintf(out, "Container: %s\n", info.Format)
	fmt.Fprintf(out, "Size:      %dx%d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Decodes as %s, %d bytes on disk\n", info.PixelFormat, info.FileSizeBytes)
	return nil
}
