// Command day1 prints the distance and similarity score of a list of pairs.
package main

import (
	"os"

	"github.com/botirk38/aoc2024"
	"github.com/botirk38/aoc2024/cli"
	"github.com/botirk38/aoc2024/reader"
)

func main() {
	os.Exit(cli.Run("day1", os.Args[1:], os.Stdout, os.Stderr, solve))
}

func solve(path string) (int64, int64, error) {
	rows, err := reader.ReadRows[int64](path)
	if err != nil {
		return 0, 0, err
	}
	return aoc2024.DistanceAndScore(rows)
}
