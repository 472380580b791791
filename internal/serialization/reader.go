package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// Read decodes a weights file from r and verifies its checksum.
func Read(r io.Reader) (*File, error) {
	fixed := make([]byte, fixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(fixed[:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}

	version := binary.LittleEndian.Uint32(fixed[4:8])
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	headerSize := binary.LittleEndian.Uint64(fixed[8:16])
	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}

	var stored [ChecksumSize]byte
	copy(stored[:], fixed[16:])

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	f := &File{}
	if err := json.Unmarshal(headerBytes, &f.Header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}
	if err := ValidateNames(f.Header.Params); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	values := make([]byte, len(f.Header.Params)*ValueSize)
	if _, err := io.ReadFull(r, values); err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	if err := ValidateChecksum(ComputeChecksum(values), stored); err != nil {
		return nil, err
	}

	f.Entries = make([]Entry, len(f.Header.Params))
	for i, name := range f.Header.Params {
		bits := binary.LittleEndian.Uint64(values[i*ValueSize:])
		f.Entries[i] = Entry{Name: name, Value: math.Float64frombits(bits)}
	}
	return f, nil
}

// Load reads the weights file at path.
func Load(path string) (*File, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Read(file)
}
