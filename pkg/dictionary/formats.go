package dictionary

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// sniffSize is how much of a file is inspected to tell text from binary.
const sniffSize = 1024

// ValidateFile checks that path is a readable regular file that looks like
// text. An empty file is valid.
func ValidateFile(path string) error {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, expected a word list file", path)
	}
	if fileInfo.Size() == 0 {
		log.Debugf("Word list %s is empty", path)
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	buffer := make([]byte, sniffSize)
	n, err := file.Read(buffer)
	if err != nil {
		return fmt.Errorf("failed to read from file %s: %w", path, err)
	}
	if bytes.IndexByte(buffer[:n], 0) >= 0 {
		return fmt.Errorf("file %s looks binary, expected plain text", path)
	}

	log.Debugf("Word list %s validated (%d bytes)", path, fileInfo.Size())
	return nil
}
