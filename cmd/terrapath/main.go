// Main package for the terrapath command line tool.
/*
terrapath finds the cheapest path across a height map, from the top-left
cell to the bottom-right cell.

Usage:
  terrapath [flags] <input_file|->
  terrapath [command]

Available Commands:
  help        Help about any command
  version     Version information

Input: whitespace-separated integers "C_cell C_height n m" followed by the
n×m height matrix. Output: one "row col" line per path cell, "-1 -1", then
the total cost.
*/
package main

func main() {
	Cmd()
}
