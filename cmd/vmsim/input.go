package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/vmsim/vm"
)

// A runSpec is everything one simulation run needs from the user.
type runSpec struct {
	Frames     int
	Pages      int
	References []int
}

// parseReferences parses a comma-separated reference list, as given to the
// --refs flag.
func parseReferences(s string) ([]int, error) {
	parts := strings.Split(s, ",")

	references := make([]int, 0, len(parts))
	for _, part := range parts {
		page, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("cannot parse reference %q: %w", part, err)
		}

		references = append(references, page)
	}

	return references, nil
}

// promptForSpec collects the simulation parameters interactively. All
// validation happens here, before any simulation state exists; the core
// re-validates anyway.
func promptForSpec(in io.Reader, out io.Writer) (runSpec, error) {
	fmt.Fprintf(out, "=== Virtual Memory Simulator (FIFO) ===\n\n")

	reader := bufio.NewReader(in)
	spec := runSpec{}

	fmt.Fprint(out, "Number of frames in physical memory: ")
	_, err := fmt.Fscan(reader, &spec.Frames)
	if err != nil {
		return spec, fmt.Errorf("reading frame count: %w", err)
	}

	fmt.Fprint(out, "Number of pages in the virtual space: ")
	_, err = fmt.Fscan(reader, &spec.Pages)
	if err != nil {
		return spec, fmt.Errorf("reading page count: %w", err)
	}

	if spec.Frames <= 0 || spec.Pages <= 0 {
		return spec, fmt.Errorf(
			"%w: frame and page counts must be positive",
			vm.ErrInvalidConfiguration)
	}

	fmt.Fprint(out, "Length of the reference sequence: ")
	length := 0
	_, err = fmt.Fscan(reader, &length)
	if err != nil {
		return spec, fmt.Errorf("reading sequence length: %w", err)
	}
	if length <= 0 {
		return spec, fmt.Errorf(
			"%w: sequence length must be positive", vm.ErrInvalidConfiguration)
	}

	fmt.Fprintf(out,
		"Page references (%d values in [0, %d], separated by spaces or newlines):\n",
		length, spec.Pages-1)

	spec.References = make([]int, length)
	for i := 0; i < length; i++ {
		_, err = fmt.Fscan(reader, &spec.References[i])
		if err != nil {
			return spec, fmt.Errorf("reading reference %d: %w", i+1, err)
		}

		if spec.References[i] < 0 || spec.References[i] >= spec.Pages {
			return spec, fmt.Errorf(
				"%w: page %d must be in [0, %d)",
				vm.ErrInvalidReference, spec.References[i], spec.Pages)
		}
	}

	return spec, nil
}
