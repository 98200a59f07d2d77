// Command day3 prints the sum of all multiplications in corrupted memory,
// then the sum of the enabled ones.
package main

import (
	"os"

	"github.com/botirk38/aoc2024/cli"
	"github.com/botirk38/aoc2024/instructions"
	"github.com/botirk38/aoc2024/reader"
)

func main() {
	os.Exit(cli.Run("day3", os.Args[1:], os.Stdout, os.Stderr, solve))
}

func solve(path string) (int64, int64, error) {
	data, err := reader.ReadText(path)
	if err != nil {
		return 0, 0, err
	}
	return int64(instructions.SumMuls(data)), int64(instructions.SumEnabledMuls(data)), nil
}
