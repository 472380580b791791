package serialization

import "time"

// Format constants.
const (
	MagicBytes    = "SCLR"
	FormatVersion = 1
	ChecksumSize  = 32 // SHA-256
	ValueSize     = 8  // float64
	MaxHeaderSize = 16 * 1024 * 1024
	MaxParams     = 1 << 24
	MaxNameLength = 256

	fixedHeaderSize = 4 + 4 + 8 + ChecksumSize
)

const scalarVersion = "0.1.0"

// Header is the JSON metadata of a weights file.
type Header struct {
	FormatVersion int               `json:"format_version"`     // Version of the file format
	ScalarVersion string            `json:"scalar_version"`     // Version of the library that wrote the file
	ModelType     string            `json:"model_type"`         // Model description, e.g. "MLP[2 3 1]"
	DType         string            `json:"dtype"`              // Element type of the model that wrote the file
	CreatedAt     time.Time         `json:"created_at"`         // When the file was written
	Params        []string          `json:"params"`             // Parameter names in value order
	Metadata      map[string]string `json:"metadata,omitempty"` // Custom metadata
}

// Entry is one named parameter value.
type Entry struct {
	Name  string
	Value float64
}

// File is a decoded weights file.
type File struct {
	Header  Header
	Entries []Entry
}

// Lookup returns the value stored under name.
func (f *File) Lookup(name string) (float64, bool) {
	for _, e := range f.Entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}
