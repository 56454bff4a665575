package itinerary

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/xiaot623/tripplanner/internal/domain"
)

// Saver hands a file to the user, e.g. as a browser download or a file on disk.
type Saver interface {
	Save(filename, contentType string, data []byte) error
}

// Printer opens a document in a new viewing context and sends it to the print flow.
// name is a file stem without extension; title is the document title.
type Printer interface {
	Print(name, title string, doc []byte) error
}

// Download renders the plain-text transcript and hands it to s.
func Download(s Saver, it *domain.Itinerary) error {
	text := RenderDownloadText(it)
	if err := s.Save(DownloadFilename(it), TextContentType, []byte(text)); err != nil {
		return fmt.Errorf("failed to save itinerary: %w", err)
	}
	return nil
}

// Print renders the printable document and hands it to p.
func Print(p Printer, it *domain.Itinerary) error {
	doc, err := RenderPrintable(it)
	if err != nil {
		return err
	}
	if err := p.Print(FileStem(it), PrintTitle(it), doc); err != nil {
		return fmt.Errorf("failed to print itinerary: %w", err)
	}
	return nil
}

// PrintTitle is the title of the printable document.
func PrintTitle(it *domain.Itinerary) string {
	return "Travel Itinerary - " + it.Destination
}

// DirSaver writes downloads into a directory.
type DirSaver struct {
	Dir string
}

// Save writes data to Dir/filename, creating Dir when needed.
func (s DirSaver) Save(filename, _ string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, filepath.Base(filename)), data, 0o644)
}

// FilePrinter writes printable documents into a directory and, when Command is
// set, runs it with the document path as the last argument (e.g. "lp" or "xdg-open").
type FilePrinter struct {
	Dir     string
	Command []string

	// LastPath is the file written by the most recent Print call.
	LastPath string
}

// Print implements Printer.
func (p *FilePrinter) Print(name, _ string, doc []byte) error {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(p.Dir, filepath.Base(name)+".html")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return err
	}
	p.LastPath = path

	if len(p.Command) == 0 {
		return nil
	}
	args := append(append([]string{}, p.Command[1:]...), path)
	out, err := exec.Command(p.Command[0], args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("print command %q: %w (%s)", p.Command[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}
