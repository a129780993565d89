package mmio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrHeaderMismatch is returned when a file's first line is not a
// recognized Matrix-Market array header.
var ErrHeaderMismatch = fmt.Errorf("mmio: %w", errHeaderMismatch)
var errHeaderMismatch = fmt.Errorf("missing or unrecognized MatrixMarket array header")

// ErrEmptyData is returned when a file declares a size but supplies
// fewer values than that size requires.
var ErrEmptyData = fmt.Errorf("mmio: %w", errEmptyData)
var errEmptyData = fmt.Errorf("fewer values than the declared dimensions require")

const headerLine = "%%MatrixMarket matrix array real general"

func readHeaderAndDims(r *bufio.Reader) (rows, cols int, err error) {
	// The header itself starts with "%", so it is read directly rather than
	// through readNonCommentLine, which would skip it as a comment.
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return 0, 0, err
	}
	if !strings.HasPrefix(strings.TrimSpace(line), "%%MatrixMarket matrix array") {
		return 0, 0, ErrHeaderMismatch
	}

	dimsLine, err := readNonCommentLine(r)
	if err != nil {
		return 0, 0, err
	}

	fields := strings.Fields(dimsLine)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("mmio: malformed size line %q", dimsLine)
	}
	rows, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("mmio: malformed size line %q: %w", dimsLine, err)
	}
	cols, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("mmio: malformed size line %q: %w", dimsLine, err)
	}

	return rows, cols, nil
}

func readNonCommentLine(r *bufio.Reader) (string, error) {
	for {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "%") {
			if err != nil {
				return "", err
			}
			continue
		}

		return trimmed, nil
	}
}

// LoadVector reads a Matrix-Market array vector (an N x 1 file) from r.
func LoadVector(r io.Reader) ([]float64, error) {
	br := bufio.NewReader(r)
	n, cols, err := readHeaderAndDims(br)
	if err != nil {
		return nil, err
	}
	if cols != 1 {
		return nil, fmt.Errorf("mmio: expected a vector (N x 1), got N x %d", cols)
	}

	values, err := readValues(br, n)
	if err != nil {
		return nil, err
	}

	return values, nil
}

func readValues(br *bufio.Reader, n int) ([]float64, error) {
	values := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		line, err := readNonCommentLine(br)
		if err != nil {
			if err == io.EOF {
				return nil, ErrEmptyData
			}

			return nil, err
		}
		v, err := strconv.ParseFloat(strings.Fields(line)[0], 64)
		if err != nil {
			return nil, fmt.Errorf("mmio: malformed value on line %d: %w", i+1, err)
		}
		values = append(values, v)
	}

	return values, nil
}

// SaveVector writes vec to w in Matrix-Market array format.
func SaveVector(w io.Writer, vec []float64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, headerLine); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d 1\n", len(vec)); err != nil {
		return err
	}
	for _, v := range vec {
		if _, err := fmt.Fprintf(bw, "%.16e\n", v); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Matrix is a dense row-major matrix.
type Matrix struct {
	Rows, Cols int
	Data       []float64 // row-major, length Rows*Cols
}

// At returns the value at (r, c).
func (m Matrix) At(r, c int) float64 {
	return m.Data[r*m.Cols+c]
}

// LoadMatrix reads a Matrix-Market array matrix from r.
func LoadMatrix(r io.Reader) (Matrix, error) {
	br := bufio.NewReader(r)
	rows, cols, err := readHeaderAndDims(br)
	if err != nil {
		return Matrix{}, err
	}

	values, err := readValues(br, rows*cols)
	if err != nil {
		return Matrix{}, err
	}

	return Matrix{Rows: rows, Cols: cols, Data: values}, nil
}

// SaveMatrix writes m to w in Matrix-Market array format, row-major.
func SaveMatrix(w io.Writer, m Matrix) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, headerLine); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d\n", m.Rows, m.Cols); err != nil {
		return err
	}
	for _, v := range m.Data {
		if _, err := fmt.Fprintf(bw, "%.16e\n", v); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// LoadVectorFile opens path and loads a vector from it.
func LoadVectorFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadVector(f)
}

// SaveVectorFile writes vec to path, creating or truncating it.
func SaveVectorFile(path string, vec []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return SaveVector(f, vec)
}

// LoadMatrixFile opens path and loads a matrix from it.
func LoadMatrixFile(path string) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matrix{}, err
	}
	defer f.Close()

	return LoadMatrix(f)
}

// SaveMatrixFile writes m to path, creating or truncating it.
func SaveMatrixFile(path string, m Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return SaveMatrix(f, m)
}
