package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

// Write encodes entries in order to w.
//
// FormatVersion, ScalarVersion and Params of header are filled in. CreatedAt
// is set to the current time when zero.
func Write(w io.Writer, header Header, entries []Entry) error {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	if err := ValidateNames(names); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	header.FormatVersion = FormatVersion
	header.ScalarVersion = scalarVersion
	header.Params = names
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	values := make([]byte, len(entries)*ValueSize)
	for i, e := range entries {
		binary.LittleEndian.PutUint64(values[i*ValueSize:], math.Float64bits(e.Value))
	}
	checksum := ComputeChecksum(values)

	var buf bytes.Buffer
	buf.Grow(fixedHeaderSize + len(headerJSON) + len(values))
	buf.WriteString(MagicBytes)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(FormatVersion))
	_ = binary.Write(&buf, binary.LittleEndian, uint64(len(headerJSON)))
	buf.Write(checksum[:])
	buf.Write(headerJSON)
	buf.Write(values)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write weights: %w", err)
	}
	return nil
}

// Save writes entries to the file at path, replacing it if it exists.
func Save(path string, header Header, entries []Entry) error {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, header, entries); err != nil {
		_ = file.Close() // Best effort close on error
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
