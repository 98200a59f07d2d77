// Command day2 prints the number of safe reports, without and with dampening.
package main

import (
	"os"

	"github.com/botirk38/aoc2024/cli"
	"github.com/botirk38/aoc2024/reader"
	"github.com/botirk38/aoc2024/reports"
)

func main() {
	os.Exit(cli.Run("day2", os.Args[1:], os.Stdout, os.Stderr, solve))
}

func solve(path string) (int64, int64, error) {
	rows, err := reader.ReadRows[int](path)
	if err != nil {
		return 0, 0, err
	}
	rows = reports.DropEmpty(rows)
	return int64(reports.CountSafe(rows)), int64(reports.CountDampenedSafe(rows)), nil
}
