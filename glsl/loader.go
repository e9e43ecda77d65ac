package glsl

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNotFound       = errors.New("shader file not found")
	ErrMissingSection = errors.New("shader section not found")
)

// section markers, one line each
const (
	VertexStart   = "/* vertex shader start */"
	VertexEnd     = "/* vertex shader end */"
	FragmentStart = "/* fragment shader start */"
	FragmentEnd   = "/* fragment shader end */"
)

// MarkersFor returns the start and end marker lines of a stage.
func MarkersFor(stage Stage) (start, end string) {
	if stage == Fragment {
		return FragmentStart, FragmentEnd
	}
	return VertexStart, VertexEnd
}

// ReadSection returns the lines between the first line equal to start and the
// next line equal to end, both excluded, with their line breaks kept. Without a
// start marker the result is empty, without an end marker it runs to EOF.
// The reader is left positioned after the end marker, so consecutive sections
// can be read from the same stream.
func ReadSection(r *bufio.Reader, start, end string) (string, error) {
	src, _, err := readSection(r, start, end)
	return src, err
}

func readSection(r *bufio.Reader, start, end string) (string, bool, error) {
	// find start marker
	found := false
	for !found {
		line, err := r.ReadString('\n')
		if line != "" && trimEOL(line) == start {
			found = true
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", false, err
		}
	}
	if !found {
		return "", false, nil
	}

	// collect section
	var b strings.Builder
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			if trimEOL(line) == end {
				break
			}
			b.WriteString(line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", true, err
		}
	}

	return b.String(), true, nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "%q", path)
		}
		return nil, errors.Wrapf(err, "open shader %q", path)
	}
	return f, nil
}

// LoadFile reads a shader whose vertex and fragment sources live in the same
// file, each between its own marker lines. The vertex section must come first.
func LoadFile(path string) (*Shader, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := &Shader{Name: path}
	r := bufio.NewReader(f)
	for _, stage := range []Stage{Vertex, Fragment} {
		if err := loadSection(s, r, path, stage); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// LoadStage reads the source of a single stage from its own file into s.
func LoadStage(s *Shader, path string, stage Stage) error {
	f, err := open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return loadSection(s, bufio.NewReader(f), path, stage)
}

// LoadFiles builds a shader from separate vertex and fragment files.
func LoadFiles(name, vertexPath, fragmentPath string) (*Shader, error) {
	s := &Shader{Name: name}
	if err := LoadStage(s, vertexPath, Vertex); err != nil {
		return nil, err
	}
	if err := LoadStage(s, fragmentPath, Fragment); err != nil {
		return nil, err
	}
	return s, nil
}

func loadSection(s *Shader, r *bufio.Reader, path string, stage Stage) error {
	start, end := MarkersFor(stage)
	src, found, err := readSection(r, start, end)
	if err != nil {
		return errors.Wrapf(err, "read %v source from %q", stage, path)
	}
	if !found {
		return errors.Wrapf(ErrMissingSection, "%v source in %q", stage, path)
	}
	s.setSource(stage, src)
	return nil
}
