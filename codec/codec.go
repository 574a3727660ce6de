// Package codec reads and writes the plain-text graph format used by
// cmd/bmssp:
//
//	n m source
//	u1 v1 w1
//	...
//	um vm wm
//
// n is the vertex count, m the edge count, source the starting vertex;
// each of the following m lines is one directed edge u->v with
// non-negative weight w. Fields are whitespace-separated; blank lines
// and lines starting with '#' are skipped everywhere in the stream.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lvlath/bmssp/bmssp"
)

// Sentinel errors identifying the class of a malformed input; ParseError
// wraps one of these with the offending line number for context.
var (
	ErrMalformedInput   = errors.New("codec: malformed input")
	ErrNegativeWeight   = errors.New("codec: negative edge weight")
	ErrVertexOutOfRange = errors.New("codec: vertex id out of range")
)

// ParseError reports the line number and underlying sentinel for a
// decode failure.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codec: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Decode reads a graph and its source vertex from r. See the package doc
// for the exact format; any deviation is reported as a *ParseError
// wrapping one of the sentinel errors above.
func Decode(r io.Reader) (g *bmssp.Graph, source int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	nextLine := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		return nil, 0, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: missing header", ErrMalformedInput)}
	}
	fields := strings.Fields(header)
	if len(fields) != 3 {
		return nil, 0, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: header must have 3 fields, got %d", ErrMalformedInput, len(fields))}
	}
	n, err1 := strconv.Atoi(fields[0])
	m, err2 := strconv.Atoi(fields[1])
	src, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil || n < 0 || m < 0 {
		return nil, 0, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: invalid header fields", ErrMalformedInput)}
	}
	if src < 0 || src >= n {
		return nil, 0, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: source %d", ErrVertexOutOfRange, src)}
	}

	graph := bmssp.NewGraph(n)
	for i := 0; i < m; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, 0, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: expected %d edges, got %d", ErrMalformedInput, m, i)}
		}
		fs := strings.Fields(line)
		if len(fs) != 3 {
			return nil, 0, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: edge must have 3 fields, got %d", ErrMalformedInput, len(fs))}
		}
		u, eu := strconv.Atoi(fs[0])
		v, ev := strconv.Atoi(fs[1])
		w, ew := strconv.ParseFloat(fs[2], 64)
		if eu != nil || ev != nil || ew != nil {
			return nil, 0, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: invalid edge fields", ErrMalformedInput)}
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, 0, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: edge %d->%d", ErrVertexOutOfRange, u, v)}
		}
		if w < 0 {
			return nil, 0, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: edge %d->%d has weight %g", ErrNegativeWeight, u, v, w)}
		}
		graph.AddEdge(u, v, w)
	}

	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("codec: reading input: %w", err)
	}

	return graph, src, nil
}

// Encode writes one distance per line, in vertex-id order. Unreachable
// vertices are written as "INF".
func Encode(w io.Writer, dist []float64) error {
	bw := bufio.NewWriter(w)
	for _, d := range dist {
		var err error
		if math.IsInf(d, 1) {
			_, err = fmt.Fprintln(bw, "INF")
		} else {
			_, err = fmt.Fprintln(bw, strconv.FormatFloat(d, 'g', -1, 64))
		}
		if err != nil {
			return fmt.Errorf("codec: writing output: %w", err)
		}
	}
	return bw.Flush()
}
