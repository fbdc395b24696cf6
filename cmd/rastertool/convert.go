package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rastertool/internal/codec"
	"github.com/ironsheep/rastertool/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an image to grayscale and/or resize it, writing PNG",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input image file")
	convertCmd.Flags().StringP("output", "o", "", "Output PNG file")
	convertCmd.Flags().Int("width", 0, "Resize box width (defaults to --height)")
	convertCmd.Flags().Int("height", 0, "Resize box height (defaults to --width)")
	convertCmd.Flags().Bool("gray", false, "Convert to 8-bit grayscale (ITU-R BT.601)")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	gray, _ := cmd.Flags().GetBool("gray")

	src, ok := codec.Load(inputPath)
	if !ok {
		return fmt.Errorf("cannot read image %s", inputPath)
	}

	dst, err := pipeline.Apply(src, pipeline.Options{Grayscale: gray, Width: width, Height: height})
	if err != nil {
		return err
	}

	if !codec.Save(dst, outputPath) {
		return fmt.Errorf("cannot write image %s", outputPath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Converted %dx%d %s → %dx%d %s\n",
		src.Width(), src.Height(), src.Format(), dst.Width(), dst.Height(), dst.Format())
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", outputPath)
	return nil
}
