package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rastertool/internal/codec"
	"github.com/ironsheep/rastertool/internal/raster"
)

var pixelCmd = &cobra.Command{
	Use:   "pixel",
	Short: "Print the pixel at (x, y) as JSON",
	Long: `Print the pixel at (x, y) as JSON. Coordinates outside the image are not an
error: the result reports in_bounds=false and the sentinel values (gray 255).`,
	RunE: runPixel,
}

func init() {
	pixelCmd.Flags().StringP("input", "i", "", "Input image file")
	pixelCmd.Flags().IntP("x", "x", 0, "X coordinate (0 = leftmost)")
	pixelCmd.Flags().IntP("y", "y", 0, "Y coordinate (0 = topmost)")
	pixelCmd.Flags().Bool("gray", false, "Read from the grayscale version of the image")
	pixelCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(pixelCmd)
}

func runPixel(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	gray, _ := cmd.Flags().GetBool("gray")

	r, err := codec.Decode(inputPath)
	if err != nil {
		return err
	}
	if gray {
		if r, err = raster.ToGrayscale(r); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(raster.Sample(r, x, y)); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
