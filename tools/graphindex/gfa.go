package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pangraph/graphindex/common"
	"github.com/pangraph/graphindex/graph"
)

// readGFA loads the S and L lines of a GFA file into a memory graph.
// Segment names must be positive integers.
func readGFA(path string) (*graph.MemoryGraph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	g := graph.NewMemoryGraph()
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		switch fields[0] {
		case "S":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: malformed segment line", lineNumber)
			}
			id, err := parseSegmentID(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineNumber, err)
			}
			g.AddNode(id, []byte(fields[2]))
		case "L":
			if len(fields) < 5 {
				return nil, fmt.Errorf("line %d: malformed link line", lineNumber)
			}
			from, err := parseSegmentID(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineNumber, err)
			}
			to, err := parseSegmentID(fields[3])
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineNumber, err)
			}
			g.AddEdge(
				graph.NewHandle(from, fields[2] == "-"),
				graph.NewHandle(to, fields[4] == "-"),
			)
		}
	}
	return g, scanner.Err()
}

func parseSegmentID(name string) (common.NodeID, error) {
	id, err := strconv.ParseUint(name, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("segment name %q is not a positive integer", name)
	}
	return common.NodeID(id), nil
}
