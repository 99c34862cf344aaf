package definition

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// indent is the per-level indentation of rendered documents.
const indent = "  "

// Render serializes the document with an XML declaration and two-space
// indentation, ending with a newline.
func Render(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", indent)

	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode definition: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("flush definition: %w", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
