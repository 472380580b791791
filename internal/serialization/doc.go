// Package serialization reads and writes trained parameter values.
//
// A weights file stores the current value of every named parameter of a
// model. It holds no graph structure; the model is rebuilt from code and the
// values are assigned by name.
//
//	Format Structure:
//	  [4 bytes: Magic "SCLR"]
//	  [4 bytes: Version (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [32 bytes: SHA-256 of the value section]
//	  [Header: JSON metadata]
//	  [Values: one float64 LE per parameter, in header order]
//
// Example usage:
//
//	entries := []serialization.Entry{{Name: "layer0.neuron0.w0", Value: 0.25}}
//	if err := serialization.Save("xor.sclr", serialization.Header{ModelType: "MLP[2 3 1]"}, entries); err != nil {
//	    log.Fatal(err)
//	}
//
//	file, err := serialization.Load("xor.sclr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(file.Header.ModelType, len(file.Entries))
package serialization
