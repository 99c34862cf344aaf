package definition

import (
	"encoding/xml"
	"strconv"
	"time"

	"github.com/oshokin/addon-builder/internal/domain/addon"
)

// DateLayout is the format of the last-modified element.
const DateLayout = "2006-01-02"

// Document is the root service-task-definition element.
type Document struct {
	XMLName      xml.Name        `xml:"service-task-definition"`
	EngineType   int             `xml:"engine-type"`
	LastModified string          `xml:"last-modified,omitempty"`
	Label        []LocalizedText `xml:"label"`
	Summary      []LocalizedText `xml:"summary"`
	HelpPageURL  []LocalizedText `xml:"help-page-url"`
	Configs      *Configs        `xml:"configs"`
	Script       Script          `xml:"script"`
	Icon         string          `xml:"icon,omitempty"`
}

// LocalizedText is one element of a multilingual group.
type LocalizedText struct {
	Locale *string `xml:"locale,attr,omitempty"`
	Text   string  `xml:",chardata"`
}

// Configs wraps the config parameters. A non-nil empty Configs still renders.
type Configs struct {
	Items []Config `xml:"config"`
}

// Config is one config parameter. Extra holds the optional attributes in
// their declared order, after name and required.
type Config struct {
	Name     string          `xml:"name,attr"`
	Required string          `xml:"required,attr"`
	Extra    []xml.Attr      `xml:",any,attr"`
	Label    []LocalizedText `xml:"label"`
}

// Script holds the concatenated sources as an unescaped CDATA section.
type Script struct {
	Body string `xml:",cdata"`
}

// Assemble builds the document for desc without the icon. now is consulted
// only when the descriptor asks for a last-modified date.
func Assemble(desc *addon.Descriptor, script string, now func() time.Time) *Document {
	doc := &Document{
		EngineType:  desc.EngineType.Code(),
		Label:       localized(desc.Label),
		Summary:     localized(desc.Summary),
		HelpPageURL: localized(desc.HelpPageURL),
		Script:      Script{Body: script},
	}

	if desc.LastModified {
		if now == nil {
			now = time.Now
		}

		doc.LastModified = now().Format(DateLayout)
	}

	if desc.HasConfigs {
		doc.Configs = &Configs{Items: make([]Config, 0, len(desc.Configs))}

		for _, param := range desc.Configs {
			doc.Configs.Items = append(doc.Configs.Items, config(param))
		}
	}

	return doc
}

// AttachIcon sets the base64 encoded icon. It is the last element added.
func (d *Document) AttachIcon(encoded string) {
	d.Icon = encoded
}

func config(param addon.ConfigParameter) Config {
	c := Config{
		Name:     param.Name,
		Required: strconv.FormatBool(param.Required),
		Label:    localized(param.Label),
	}

	for _, attr := range param.Attributes {
		c.Extra = append(c.Extra, xml.Attr{Name: xml.Name{Local: attr.Name}, Value: attr.Value})
	}

	return c
}

func localized(values []addon.LocalizedValue) []LocalizedText {
	if len(values) == 0 {
		return nil
	}

	result := make([]LocalizedText, len(values))
	for i, v := range values {
		result[i] = LocalizedText{Locale: v.Locale, Text: v.Text}
	}

	return result
}
